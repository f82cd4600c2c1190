// Package styles holds the lipgloss palette and styles of the checker UI.
// Colors are AdaptiveColor so they work on light and dark terminals.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	Cyan          = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}
	Emerald       = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	Rose          = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}
	Amber         = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	TextPrimary   = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}
	TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}
	TextMuted     = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}
	Overlay       = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}
)

// Theme groups the styles used by the checker views.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Error    lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Help     lipgloss.Style

	CardScam lipgloss.Style
	CardSafe lipgloss.Style
	Label    lipgloss.Style
	Danger   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	SafeMsg  lipgloss.Style
}

func NewTheme() *Theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		MarginTop(1)

	return &Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Cyan),
		Subtitle: lipgloss.NewStyle().Foreground(TextSecondary),
		Error:    lipgloss.NewStyle().Foreground(Rose),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Cyan).
			Padding(0, 2),
		Disabled: lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(Overlay).
			Padding(0, 2),
		Help: lipgloss.NewStyle().Foreground(TextMuted),

		CardScam: card.BorderForeground(Rose),
		CardSafe: card.BorderForeground(Emerald),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(TextPrimary),
		Danger:   lipgloss.NewStyle().Bold(true).Foreground(Rose),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(Emerald),
		Warning:  lipgloss.NewStyle().Foreground(Amber),
		SafeMsg:  lipgloss.NewStyle().Foreground(Emerald),
	}
}
