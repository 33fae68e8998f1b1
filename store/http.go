package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/miosa/osa-vocab/vocab"
)

// APIError is a non-2xx response from the document API.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("API %d: %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("API %d: %s", e.Status, e.Message)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type wordsResponse struct {
	Words []vocab.Word `json:"words"`
}

// HTTP fetches words from a remote document API.
type HTTP struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewHTTP returns a client for baseURL with a 30s timeout.
func NewHTTP(baseURL, token string) *HTTP {
	return &HTTP{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Words issues GET /api/words.
func (c *HTTP) Words(ctx context.Context) ([]vocab.Word, error) {
	resp, err := c.get(ctx, "/api/words")
	if err != nil {
		return nil, fmt.Errorf("fetch words: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseError(resp)
	}
	var out wordsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode words: %w", err)
	}
	return out.Words, nil
}

func (c *HTTP) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	return c.HTTPClient.Do(req)
}

func parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var apiErr errorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error, Details: apiErr.Details}
	}
	return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}
