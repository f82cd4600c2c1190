package checker

import (
	"strings"

	"github.com/bryanwahyu/phishproof/internal/form"
	"github.com/bryanwahyu/phishproof/internal/ui/styles"
)

// RenderCard draws the verdict card for v.
func RenderCard(theme *styles.Theme, v form.Verdict) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render("Analysis Result"))
	b.WriteString("\n\n")

	status := theme.Success.Render(v.Label)
	if v.Scam {
		status = theme.Danger.Render(v.Label)
	}
	b.WriteString(theme.Label.Render("Status: ") + status + "\n")

	if v.Scam {
		b.WriteString(theme.Label.Render("Threat Type: ") + v.ThreatType + "\n")
	}
	b.WriteString(theme.Label.Render("AI Confidence: ") + v.Confidence + "%\n\n")

	if v.Scam {
		b.WriteString(theme.Warning.Render(v.Advice))
		return theme.CardScam.Render(b.String())
	}
	b.WriteString(theme.SafeMsg.Render(v.Advice))
	return theme.CardSafe.Render(b.String())
}
