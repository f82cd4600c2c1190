package form

import (
	"fmt"
	"math"

	"github.com/bryanwahyu/phishproof/internal/domain/analysis"
)

// DefaultConfidenceBoost is added to the raw confidence before display.
const DefaultConfidenceBoost = 30

const (
	LabelSuspicious = "Suspicious"
	LabelSafe       = "Looks Safe"

	AdviceScam = "Do not click any links or share personal information."
	AdviceSafe = "No common scam indicators were found in this text."
)

// Verdict is the display model of the verdict card.
type Verdict struct {
	Scam       bool
	Label      string
	ThreatType string // empty unless Scam
	Confidence string // without the percent sign
	Advice     string
}

// RenderVerdict maps a result to what the verdict card shows, using boost
// as the display-only confidence adjustment.
func RenderVerdict(res analysis.Result, boost float64) Verdict {
	v := Verdict{
		Scam:       res.IsScam,
		Confidence: FormatConfidence(res.Confidence, boost),
	}
	if res.IsScam {
		v.Label = LabelSuspicious
		v.ThreatType = res.Type
		v.Advice = AdviceScam
	} else {
		v.Label = LabelSafe
		v.Advice = AdviceSafe
	}
	return v
}

// FormatConfidence returns raw+boost with two decimals, or "100" once the
// boosted value reaches the cap. Ties round up (80.125 -> "80.13").
func FormatConfidence(raw, boost float64) string {
	boosted := raw + boost
	if boosted < 100 {
		return fmt.Sprintf("%.2f", math.Floor(boosted*100+0.5)/100)
	}
	return "100"
}
