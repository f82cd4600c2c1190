package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/phishproof/internal/domain/analysis"
)

type fakeService struct {
	calls   int
	res     analysis.Result
	err     error
	panics  bool
	sawBusy bool
	form    *Form
}

func (s *fakeService) Analyze(ctx context.Context, text string) (analysis.Result, error) {
	s.calls++
	if s.form != nil {
		s.sawBusy = s.form.Busy()
	}
	if s.panics {
		panic("boom")
	}
	return s.res, s.err
}

func TestSubmitRejectsBlankInput(t *testing.T) {
	for _, text := range []string{"", " ", "\n\t  \n"} {
		f := New()
		svc := &fakeService{}
		f.SetText(text)

		err := f.Analyze(context.Background(), svc)

		require.ErrorIs(t, err, analysis.ErrValidation)
		assert.Equal(t, 0, svc.calls, "no network call for %q", text)
		st := f.State()
		assert.Equal(t, MsgEmptyInput, st.Error)
		assert.Nil(t, st.Result)
		assert.False(t, st.Busy)
		assert.Equal(t, PhaseInvalid, st.Phase)
	}
}

func TestValidationClearsPreviousResult(t *testing.T) {
	f := New()
	f.SetText("hello")
	require.NoError(t, f.Analyze(context.Background(), &fakeService{res: analysis.Result{Type: "None", Confidence: 98}}))
	require.NotNil(t, f.State().Result)

	f.SetText("   ")
	_, err := f.Submit()
	require.ErrorIs(t, err, analysis.ErrValidation)
	assert.Nil(t, f.State().Result)
}

func TestSubmitSetsBusyAndClearsPrevious(t *testing.T) {
	f := New()
	f.SetText("x")
	f.Resolve(analysis.Result{}, errors.New("down"))
	require.Equal(t, MsgConnectivity, f.State().Error)

	req, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "x", req.Text)

	st := f.State()
	assert.True(t, st.Busy)
	assert.Empty(t, st.Error)
	assert.Nil(t, st.Result)
	assert.Equal(t, PhaseSending, st.Phase)
}

func TestSubmitRefusedWhileBusy(t *testing.T) {
	f := New()
	f.SetText("win a prize")
	_, err := f.Submit()
	require.NoError(t, err)

	_, err = f.Submit()
	assert.ErrorIs(t, err, ErrBusy)
	assert.True(t, f.Busy())
}

func TestAnalyzeSuccess(t *testing.T) {
	f := New()
	want := analysis.Result{IsScam: true, Type: "Phishing", Confidence: 94}
	svc := &fakeService{res: want, form: f}
	f.SetText("verify your bank password")

	require.NoError(t, f.Analyze(context.Background(), svc))

	assert.Equal(t, 1, svc.calls)
	assert.True(t, svc.sawBusy, "busy must be set while the call is in flight")
	st := f.State()
	assert.False(t, st.Busy)
	assert.Empty(t, st.Error)
	require.NotNil(t, st.Result)
	assert.Equal(t, want, *st.Result)
	assert.Equal(t, PhaseSuccess, st.Phase)
}

func TestAnalyzeFailureCollapsesToConnectivityMessage(t *testing.T) {
	f := New()
	svc := &fakeService{err: errors.New("server responded with status: 500"), form: f}
	f.SetText("hello")

	err := f.Analyze(context.Background(), svc)

	require.ErrorIs(t, err, analysis.ErrConnectivity)
	assert.True(t, svc.sawBusy)
	st := f.State()
	assert.False(t, st.Busy)
	assert.Equal(t, MsgConnectivity, st.Error)
	assert.Nil(t, st.Result)
	assert.Equal(t, PhaseFailure, st.Phase)
}

func TestAnalyzeClearsBusyOnPanic(t *testing.T) {
	f := New()
	f.SetText("hello")

	assert.Panics(t, func() {
		_ = f.Analyze(context.Background(), &fakeService{panics: true})
	})
	assert.False(t, f.Busy())
	assert.Equal(t, MsgConnectivity, f.State().Error)
}

func TestStateReturnsCopy(t *testing.T) {
	f := New()
	f.SetText("hello")
	_, err := f.Submit()
	require.NoError(t, err)
	f.Resolve(analysis.Result{Type: "None", Confidence: 98}, nil)

	st := f.State()
	st.Result.Type = "changed"
	assert.Equal(t, "None", f.State().Result.Type)
}

func TestResetKeepsText(t *testing.T) {
	f := New()
	f.SetText("hello")
	f.Resolve(analysis.Result{}, errors.New("x"))
	f.Reset()

	st := f.State()
	assert.Equal(t, PhaseIdle, st.Phase)
	assert.Equal(t, "hello", st.Text)
	assert.Empty(t, st.Error)
}
