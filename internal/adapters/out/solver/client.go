// Package solver submits optimization jobs to the external VRP engine.
// Submission is asynchronous: the engine acknowledges with a 2xx status
// and reports the outcome later through the webhook named in the request.
package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"routeplan/internal/core/ports"
	"routeplan/internal/pkg/errs"
)

// Client implements ports.SolverClient over the engine's HTTP API.
//
// Dispatch is deliberately single-shot: a retried submission would enqueue
// the same job twice and the engine would fire the webhook twice. The
// dispatcher treats a failed submission as a failed compute instead.
type Client struct {
	baseURL string
	apiKey  string
	session *http.Client
}

// NewClient creates a solver client for the given endpoint.
func NewClient(baseURL string, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		session: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Dispatch submits one solve job. Any 2xx response counts as acceptance; a
// non-2xx response yields a ports.DispatchRejectedError and a network
// failure a ports.DispatchTransportError.
func (c *Client) Dispatch(ctx context.Context, request *ports.SolveRequest) error {
	if request == nil {
		return errs.NewValueIsRequiredError("request")
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshal solve request: %w", err)
	}

	endpoint := c.baseURL + "/v1/solve"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return ports.NewDispatchTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(resp.Body)
		return ports.NewDispatchRejectedError(resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return nil
}
