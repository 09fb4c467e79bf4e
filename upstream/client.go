package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the production learning-center API deployment.
const DefaultBaseURL = "https://islomjonovabdulazim-learning-center-assistant-system-99fa.twc1.net"

// ErrSessionExpired is returned for any upstream 401. The handler layer
// reacts by wiping the dashboard session before surfacing the error, so
// the check never reaches per-view error handling.
var ErrSessionExpired = errors.New("upstream session expired")

// APIError carries an upstream rejection. Detail is the upstream-provided
// message when the body has one, else a generic fallback; it is shown to
// the user verbatim.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: %d %s", e.Status, e.Detail)
}

// Client is the single HTTP gateway to the learning-center API. All
// domain resource clients go through do; there are no retries and no
// request de-duplication, matching the one-shot action model.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Detail: "Request failed"}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
	}
	return apiErr
}
