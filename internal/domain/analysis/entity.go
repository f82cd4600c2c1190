package analysis

import "time"

// ID tipe untuk Record
type RecordID string

// Label yang dikenal classifier
const (
	TypeNone       = "None"
	TypePhishing   = "Phishing"
	TypeSpamFraud  = "Spam / Fraud"
	TypeUnknown    = "Unknown"
	TypeNotTrained = "Model Not Trained"
)

// Request body yang dikirim ke endpoint /analyze
type Request struct {
	Text string `json:"text"`
}

// Result verdict dari classifier. Confidence dalam skala 0-100.
type Result struct {
	IsScam     bool    `json:"isScam"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// Record menyimpan satu verdict untuk audit dan history
type Record struct {
	ID         RecordID  `json:"id"`
	Client     string    `json:"client,omitempty"`
	Text       string    `json:"text"`
	IsScam     bool      `json:"isScam"`
	Type       string    `json:"type"`
	Confidence float64   `json:"confidence"`
	Backend    string    `json:"backend,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ResultForLabel maps a classifier label (ham, phishing, spam) to a Result.
func ResultForLabel(label string, confidence float64) Result {
	switch label {
	case "ham":
		return Result{IsScam: false, Type: TypeNone, Confidence: confidence}
	case "phishing":
		return Result{IsScam: true, Type: TypePhishing, Confidence: confidence}
	case "spam":
		return Result{IsScam: true, Type: TypeSpamFraud, Confidence: confidence}
	default:
		return Result{IsScam: false, Type: TypeUnknown, Confidence: confidence}
	}
}

// NotTrained is returned by classifiers that have no model to consult.
func NotTrained() Result {
	return Result{IsScam: false, Type: TypeNotTrained, Confidence: 0}
}
