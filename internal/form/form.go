// Package form holds the state of the paste-and-check form: the text being
// edited, the busy flag around the one in-flight request, and the verdict or
// error shown after it completes.
package form

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/bryanwahyu/phishproof/internal/domain/analysis"
)

// Messages shown inline under the text area.
const (
	MsgEmptyInput   = "Please enter some text to analyze."
	MsgConnectivity = "Failed to reach the analysis server. Make sure your Python backend is running."
)

// Phase of the form state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseInvalid
	PhaseSending
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseInvalid:
		return "invalid"
	case PhaseSending:
		return "sending"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is the complete form record. Every transition replaces it as a whole.
type State struct {
	Phase  Phase
	Text   string
	Result *analysis.Result
	Error  string
	Busy   bool
}

// Form owns a State and applies transitions to it.
// It is not safe for concurrent use; the UI loop is its only writer.
type Form struct {
	state State
}

func New() *Form {
	return &Form{}
}

// State returns a copy of the current state.
func (f *Form) State() State {
	s := f.state
	if s.Result != nil {
		r := *s.Result
		s.Result = &r
	}
	return s
}

// Busy reports whether a request is in flight. The action control is
// disabled while it is true.
func (f *Form) Busy() bool { return f.state.Busy }

// SetText captures the text area contents.
func (f *Form) SetText(text string) {
	f.state.Text = text
}

// Submit runs the validation gate. On success it clears any previous
// verdict or error, marks the form busy and returns the request to send.
// It returns ErrValidation for blank input and ErrBusy while a request is
// already in flight; in both cases nothing must be sent.
func (f *Form) Submit() (analysis.Request, error) {
	if f.state.Busy {
		return analysis.Request{}, ErrBusy
	}
	f.state.Phase = PhaseValidating
	if strings.TrimSpace(f.state.Text) == "" {
		f.state = State{
			Phase: PhaseInvalid,
			Text:  f.state.Text,
			Error: MsgEmptyInput,
		}
		return analysis.Request{}, analysis.ErrValidation
	}
	f.state = State{
		Phase: PhaseSending,
		Text:  f.state.Text,
		Busy:  true,
	}
	return analysis.Request{Text: f.state.Text}, nil
}

// Resolve completes the in-flight request. Any error collapses to the one
// connectivity message; the busy flag is always cleared.
func (f *Form) Resolve(res analysis.Result, err error) {
	if err != nil {
		log.Printf("analyze failed err=%v", err)
		f.state = State{
			Phase: PhaseFailure,
			Text:  f.state.Text,
			Error: MsgConnectivity,
		}
		return
	}
	f.state = State{
		Phase:  PhaseSuccess,
		Text:   f.state.Text,
		Result: &res,
	}
}

// Reset returns the form to idle while keeping the text.
func (f *Form) Reset() {
	if f.state.Busy {
		return
	}
	f.state = State{Phase: PhaseIdle, Text: f.state.Text}
}

// Analyze performs a complete submit/dispatch/resolve cycle against svc.
// The busy flag is cleared in a deferred block, so it never stays set even
// if svc panics.
func (f *Form) Analyze(ctx context.Context, svc analysis.Service) error {
	req, err := f.Submit()
	if err != nil {
		return err
	}

	var (
		res     analysis.Result
		callErr = errors.New("analysis did not complete")
	)
	defer func() {
		f.Resolve(res, callErr)
	}()

	res, callErr = svc.Analyze(ctx, req.Text)
	if callErr != nil {
		return analysis.ErrConnectivity
	}
	return nil
}

// ErrBusy is returned by Submit while a request is in flight.
var ErrBusy = errors.New("analysis already in progress")
