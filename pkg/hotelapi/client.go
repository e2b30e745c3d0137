package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// baseClient issues requests against one resource root with the fixed
// headers applied. Status handling is left to the caller.
type baseClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newBaseClient(cfg Config, resource string, logger *slog.Logger) *baseClient {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &baseClient{
		baseURL:    cfg.resourceURL(resource),
		httpClient: cfg.httpClient(),
		logger:     logger.With("component", "hotelapi", "resource", resource),
	}
}

// do performs one HTTP request. path is relative to the resource root and may
// be empty. A non-nil body is JSON-encoded; a non-empty token is sent as a
// bearer Authorization header. Transport failures are returned as errors; any
// received response is returned with its body fully read.
func (c *baseClient) do(ctx context.Context, method, path string, query url.Values, body any, token string) (*http.Response, []byte, error) {
	reqURL := c.baseURL
	if path != "" {
		reqURL += "/" + strings.TrimLeft(path, "/")
	}
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerClientID, headerClientIDValue)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("HTTP request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("HTTP response", "status", resp.StatusCode, "bytes", len(raw))
	return resp, raw, nil
}

// statusError converts a non-2xx response into an HTTPError, extracting the
// server-supplied message when the body carries one.
func statusError(resp *http.Response, raw []byte) *HTTPError {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(raw, &body) // absent or malformed body means no server message
	return newHTTPError(resp.StatusCode, body.Error)
}

// decodeInto unmarshals raw into a value of type T, tolerating an empty body.
func decodeInto[T any](raw []byte) (T, error) {
	var data T
	if len(bytes.TrimSpace(raw)) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("parse response: %w", err)
	}
	return data, nil
}
