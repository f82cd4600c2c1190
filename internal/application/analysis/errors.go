package analysis

import "errors"

// ErrHistoryDisabled is returned by history use-cases when no database is configured.
var ErrHistoryDisabled = errors.New("analysis history is not enabled")
