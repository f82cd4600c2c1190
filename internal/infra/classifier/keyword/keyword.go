package keyword

import (
	"context"
	"strings"
	"time"

	"github.com/bryanwahyu/phishproof/internal/domain/analysis"
)

var (
	phishingWords = []string{"password", "bank", "urgent"}
	spamWords     = []string{"lottery", "win", "crypto"}
)

// Classifier is a stand-in for a real model server. It matches a few
// keywords and can simulate network latency.
type Classifier struct {
	Delay time.Duration
}

func New(delay time.Duration) *Classifier {
	return &Classifier{Delay: delay}
}

func (c *Classifier) Analyze(ctx context.Context, text string) (analysis.Result, error) {
	if c.Delay > 0 {
		t := time.NewTimer(c.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return analysis.Result{}, ctx.Err()
		case <-t.C:
		}
	}
	return Classify(text), nil
}

// Classify returns the keyword verdict for text. Phishing words win over spam words.
func Classify(text string) analysis.Result {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, phishingWords):
		return analysis.Result{IsScam: true, Type: analysis.TypePhishing, Confidence: 94}
	case containsAny(lower, spamWords):
		return analysis.Result{IsScam: true, Type: analysis.TypeSpamFraud, Confidence: 88}
	default:
		return analysis.Result{IsScam: false, Type: analysis.TypeNone, Confidence: 98}
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
