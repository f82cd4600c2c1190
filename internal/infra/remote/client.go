package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bryanwahyu/phishproof/internal/domain/analysis"
)

// DefaultEndpoint is where the analysis server listens out of the box.
const DefaultEndpoint = "http://localhost:8000/analyze"

// Client sends text to a remote /analyze endpoint.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{Endpoint: endpoint, HTTPClient: http.DefaultClient}
}

// Analyze implements analysis.Service. Every failure is reported as
// analysis.ErrConnectivity with the cause wrapped alongside for logging.
func (c *Client) Analyze(ctx context.Context, text string) (analysis.Result, error) {
	body, err := json.Marshal(analysis.Request{Text: text})
	if err != nil {
		return analysis.Result{}, fmt.Errorf("%w: encode request: %v", analysis.ErrConnectivity, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return analysis.Result{}, fmt.Errorf("%w: build request: %v", analysis.ErrConnectivity, err)
	}
	req.Header.Set("Content-Type", "application/json")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("%w: %v", analysis.ErrConnectivity, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return analysis.Result{}, fmt.Errorf("%w: server responded with status: %d", analysis.ErrConnectivity, resp.StatusCode)
	}

	var out *analysis.Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return analysis.Result{}, fmt.Errorf("%w: decode response: %v", analysis.ErrConnectivity, err)
	}
	if out == nil {
		return analysis.Result{}, fmt.Errorf("%w: empty response body", analysis.ErrConnectivity)
	}
	return *out, nil
}
