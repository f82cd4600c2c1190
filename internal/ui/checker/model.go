// Package checker is the terminal front-end of the scam text analyzer: a
// text area, an analyze action that is disabled while a request is in
// flight, and the verdict card.
package checker

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bryanwahyu/phishproof/internal/domain/analysis"
	"github.com/bryanwahyu/phishproof/internal/form"
	"github.com/bryanwahyu/phishproof/internal/ui/styles"
)

// analyzeDoneMsg carries the outcome of the in-flight request.
type analyzeDoneMsg struct {
	res analysis.Result
	err error
}

// Model is the Bubble Tea model of the checker screen.
type Model struct {
	ctx     context.Context
	svc     analysis.Service
	form    *form.Form
	boost   float64
	theme   *styles.Theme
	input   textarea.Model
	spinner spinner.Model
	width   int
}

// New creates the checker screen backed by svc. boost is the display-only
// confidence adjustment passed to form.RenderVerdict.
func New(ctx context.Context, svc analysis.Service, boost float64) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste suspicious text here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(8)
	ta.SetWidth(72)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Line

	return Model{
		ctx:     ctx,
		svc:     svc,
		form:    form.New(),
		boost:   boost,
		theme:   styles.NewTheme(),
		input:   ta,
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 8 {
			m.input.SetWidth(min(msg.Width-4, 100))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			return m.submit()
		case tea.KeyCtrlR:
			m.form.Reset()
			return m, nil
		}
		if m.form.Busy() {
			// input is frozen while analyzing
			return m, nil
		}

	case analyzeDoneMsg:
		m.form.Resolve(msg.res, msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.form.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.form.SetText(m.input.Value())
	return m, cmd
}

// submit is the analyze action. It is a no-op while busy.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.form.SetText(m.input.Value())
	req, err := m.form.Submit()
	if err != nil {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, analyzeCmd(m.ctx, m.svc, req.Text))
}

// analyzeCmd runs the request off the UI loop. A panicking service is
// reported as a failure so the busy flag is always released.
func analyzeCmd(ctx context.Context, svc analysis.Service, text string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("analyze panic: %v", r)
				msg = analyzeDoneMsg{err: fmt.Errorf("analyze panic: %v", r)}
			}
		}()
		res, err := svc.Analyze(ctx, text)
		return analyzeDoneMsg{res: res, err: err}
	}
}

func (m Model) View() string {
	st := m.form.State()
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Scam Text Analyzer"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Paste an email, SMS, or message below to check if it's safe."))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if st.Error != "" {
		b.WriteString(m.theme.Error.Render(st.Error))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if st.Busy {
		b.WriteString(m.theme.Disabled.Render(m.spinner.View() + " Analyzing..."))
	} else {
		b.WriteString(m.theme.Button.Render("Check for Scam"))
	}
	b.WriteString("  ")
	b.WriteString(m.theme.Help.Render("ctrl+s analyze • ctrl+r clear result • esc quit"))
	b.WriteString("\n")

	if st.Result != nil {
		b.WriteString(RenderCard(m.theme, form.RenderVerdict(*st.Result, m.boost)))
		b.WriteString("\n")
	}
	return b.String()
}

// State exposes the form state, mainly for tests and one-shot mode.
func (m Model) State() form.State {
	return m.form.State()
}
