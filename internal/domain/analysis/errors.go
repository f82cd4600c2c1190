package analysis

import "errors"

// ErrValidation indicates the submitted text was empty or whitespace-only.
var ErrValidation = errors.New("please enter some text to analyze")

// ErrConnectivity covers every failure to obtain a verdict from the backend:
// non-2xx status, unreachable server or an undecodable body.
var ErrConnectivity = errors.New("analysis server unreachable")

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")
