// Package practicum implements the client for the Practicum homework
// status API and validation of its responses.
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ykarpenko/hwbot/internal/config"
)

// Client calls the homework status endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	log        *slog.Logger
}

// NewClient creates a new API client from the practicum configuration.
func NewClient(cfg config.PracticumConfig, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		token:      cfg.Token,
		log:        log.With("component", "practicum_client"),
	}
}

// HomeworkStatuses performs a GET against the status endpoint with from as
// the from_date lower bound and returns the raw JSON body. Failures are
// classified: transport errors as KindConnectivity, non-200 responses as
// KindRequestFailed, and non-JSON bodies as KindMalformedResponse.
func (c *Client) HomeworkStatuses(ctx context.Context, from int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, WrapError(KindConnectivity, "failed to build request", err)
	}

	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(from, 10))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, WrapError(KindConnectivity, fmt.Sprintf("endpoint %s is unreachable", c.endpoint), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewError(KindRequestFailed, fmt.Sprintf("endpoint %s returned status %d", c.endpoint, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, WrapError(KindConnectivity, "failed to read response body", err)
	}

	if !json.Valid(body) {
		return nil, NewError(KindMalformedResponse, "response body is not valid JSON")
	}

	c.log.DebugContext(ctx, "Endpoint responded", "from_date", from, "bytes", len(body))
	return body, nil
}
