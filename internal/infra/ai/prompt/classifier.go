package prompt

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/bryanwahyu/phishproof/internal/domain/analysis"
)

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return `You are a fraud analyst classifying short messages (emails, SMS, chat). You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- label is one of: ham, phishing, spam.
  - phishing: tries to obtain credentials, payment details or account access.
  - spam: unsolicited prizes, lotteries, crypto or investment schemes, mass marketing fraud.
  - ham: an ordinary legitimate message.
- confidence is your probability for the chosen label, between 0 and 1.

Schema (example):
{"label": "ham", "confidence": 0.97}`
}

// GetUserPrompt wraps the message to classify.
func GetUserPrompt(text string) string {
	return fmt.Sprintf("Classify this message and respond with the JSON per schema.\n\nMessage:\n%s", text)
}

// Verdict is the structure the system prompt asks the model to return.
type Verdict struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ParseVerdict decodes model output into a Result. Confidence is converted
// from a probability to a percentage rounded to two decimals.
func ParseVerdict(content string) (analysis.Result, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var v Verdict
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return analysis.Result{}, fmt.Errorf("failed to decode verdict: %w", err)
	}
	p := v.Confidence
	if p > 1 {
		// some models answer in percent already
		p = p / 100
	}
	p = math.Max(0, math.Min(1, p))
	pct := math.Round(p*100*100) / 100
	return analysis.ResultForLabel(strings.ToLower(strings.TrimSpace(v.Label)), pct), nil
}
