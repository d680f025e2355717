// Package translate is a minimal client for the DeepL /v2/translate
// endpoint: one form-encoded POST, one JSON answer, no retries.
package translate

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/tidwall/gjson"
)

// Path is appended to the base URL for every request.
const Path = "/v2/translate"

var (
	// ErrNoTranslation is returned when the response holds no translations.
	ErrNoTranslation = errors.New("no translation in response")

	// ErrInvalidJSON is returned when the response body is not JSON.
	ErrInvalidJSON = errors.New("invalid JSON from DeepL")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int

	// Message is DeepL's "message" field when the body carries one.
	Message string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("DeepL returned an error status: %d %s", e.Code, http.StatusText(e.Code))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Result is one translation.
type Result struct {
	Text string

	// DetectedSource is the source language DeepL reports. Empty when the
	// response omits it.
	DetectedSource string
}

// Client sends translation requests.
type Client struct {
	BaseURL string
	AuthKey string

	// HTTP defaults to http.DefaultClient.
	HTTP *http.Client

	// UserAgent is sent when non-empty.
	UserAgent string
}

// New returns a Client for baseURL using the default HTTP client.
func New(baseURL, authKey string) *Client {
	return &Client{BaseURL: baseURL, AuthKey: authKey}
}

// Translate sends text to DeepL for translation into target. source is sent
// as source_lang when non-empty.
func (c *Client) Translate(ctx context.Context, text, target, source string) (*Result, error) {
	endpoint := strings.TrimRight(c.BaseURL, "/") + Path

	form := url.Values{}
	form.Set("auth_key", c.AuthKey)
	form.Set("text", text)
	form.Set("target_lang", target)
	if source != "" {
		form.Set("source_lang", source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br, gzip")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	httpc := c.HTTP
	if httpc == nil {
		httpc = http.DefaultClient
	}

	slog.Debug("sending translation request", "url", endpoint, "target", target, "source", source, "chars", len(text))
	resp, err := httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to contact DeepL: %w", err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read DeepL response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Code:    resp.StatusCode,
			Message: gjson.GetBytes(body, "message").String(),
		}
	}

	return parseResponse(body)
}

// parseResponse extracts the first translation from a DeepL JSON body.
func parseResponse(body []byte) (*Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}

	translations := gjson.GetBytes(body, "translations")
	if !translations.IsArray() {
		return nil, fmt.Errorf("%w: missing translations array", ErrInvalidJSON)
	}

	first := translations.Get("0")
	if !first.Exists() {
		return nil, ErrNoTranslation
	}

	text := first.Get("text")
	if text.Type != gjson.String {
		return nil, fmt.Errorf("%w: translation has no text", ErrInvalidJSON)
	}

	return &Result{
		Text:           strings.TrimSpace(text.String()),
		DetectedSource: first.Get("detected_source_language").String(),
	}, nil
}

// readBody reads the response body, decoding br and gzip content encodings.
// Setting Accept-Encoding by hand turns off net/http's transparent gzip, so
// both are handled here.
func readBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "br":
		r = brotli.NewReader(resp.Body)
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return io.ReadAll(r)
}
