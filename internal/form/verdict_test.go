package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bryanwahyu/phishproof/internal/domain/analysis"
)

func TestRenderVerdictScam(t *testing.T) {
	v := RenderVerdict(analysis.Result{IsScam: true, Type: "Phishing", Confidence: 94}, DefaultConfidenceBoost)

	assert.True(t, v.Scam)
	assert.Equal(t, LabelSuspicious, v.Label)
	assert.Equal(t, "Phishing", v.ThreatType)
	assert.Equal(t, "100", v.Confidence)
	assert.Equal(t, AdviceScam, v.Advice)
}

func TestRenderVerdictSafe(t *testing.T) {
	v := RenderVerdict(analysis.Result{IsScam: false, Type: "None", Confidence: 98}, DefaultConfidenceBoost)

	assert.False(t, v.Scam)
	assert.Equal(t, LabelSafe, v.Label)
	assert.Empty(t, v.ThreatType)
	assert.Equal(t, "100", v.Confidence)
	assert.Equal(t, AdviceSafe, v.Advice)
}

func TestFormatConfidence(t *testing.T) {
	tests := []struct {
		raw, boost float64
		want       string
	}{
		{94, 30, "100"},
		{70, 30, "100"},
		{69.99, 30, "99.99"},
		{50, 30, "80.00"},
		{62.456, 30, "92.46"},
		{0, 30, "30.00"},
		{94, 0, "94.00"},
		{50.125, 30, "80.13"},
		{50.375, 30, "80.38"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatConfidence(tc.raw, tc.boost), "raw=%v boost=%v", tc.raw, tc.boost)
	}
}
