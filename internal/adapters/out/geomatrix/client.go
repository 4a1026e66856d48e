// Package geomatrix calls the external routing service that resolves
// pairwise driving distances and durations for a set of coordinates.
package geomatrix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"routeplan/internal/core/domain/model/distance"
	"routeplan/internal/core/domain/model/kernel"
	"routeplan/internal/pkg/errs"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Body)
}

// Client implements ports.MatrixProvider over the provider's HTTP matrix
// endpoint. One call resolves the full n by n matrix for the given points.
type Client struct {
	baseURL string
	apiKey  string
	session *http.Client
}

// NewClient creates a matrix provider client for the given endpoint.
func NewClient(baseURL string, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		session: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type matrixPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type matrixRequest struct {
	Points []matrixPoint `json:"points"`
}

type matrixElement struct {
	OriginIndex      int    `json:"originIndex"`
	DestinationIndex int    `json:"destinationIndex"`
	DistanceMeters   int    `json:"distanceMeters"`
	DurationMinutes  int    `json:"durationMinutes"`
	Condition        string `json:"condition"`
}

type matrixResponse struct {
	Elements []matrixElement `json:"elements"`
}

// ComputeMatrix resolves all pairwise elements for the given points. The
// provider reports unreachable pairs with a ROUTE_NOT_FOUND condition
// instead of failing the whole request.
func (c *Client) ComputeMatrix(ctx context.Context, points []kernel.GeoPoint) ([]distance.Element, error) {
	if len(points) == 0 {
		return nil, errs.NewValueIsRequiredError("points")
	}

	reqPoints := make([]matrixPoint, 0, len(points))
	for _, point := range points {
		reqPoints = append(reqPoints, matrixPoint{Lat: point.Lat(), Lng: point.Lng()})
	}

	payload, err := json.Marshal(matrixRequest{Points: reqPoints})
	if err != nil {
		return nil, fmt.Errorf("marshal matrix request: %w", err)
	}

	endpoint := c.baseURL + "/v1/matrix"
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return c.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		return nil, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err = json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("decode matrix response: %w", err)
	}

	elements := make([]distance.Element, 0, len(mr.Elements))
	for _, element := range mr.Elements {
		elements = append(elements, distance.Element{
			OriginIndex:      element.OriginIndex,
			DestinationIndex: element.DestinationIndex,
			DistanceMeters:   element.DistanceMeters,
			DurationMinutes:  element.DurationMinutes,
			Condition:        distance.Condition(element.Condition),
		})
	}

	return elements, nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	url string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429 and 5xx
// responses) using exponential backoff while respecting context
// cancellation.
func (c *Client) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	const maxAttempts = 4
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusTooManyRequests,
				http.StatusInternalServerError,
				http.StatusBadGateway,
				http.StatusServiceUnavailable,
				http.StatusGatewayTimeout:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
