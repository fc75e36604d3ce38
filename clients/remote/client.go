// Package remote provides a client for a running antigone HTTP server. It
// reads lines, looks up words and searches over plain GET requests and
// decodes every response into domain records.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/helixml/antigone/application/service"
	"github.com/helixml/antigone/domain/lexicon"
	"github.com/helixml/antigone/domain/text"
	"github.com/helixml/antigone/infrastructure/api/v1/dto"
	"github.com/helixml/antigone/internal/config"
)

// Client errors.
var (
	// ErrNotConfigured indicates no server URL was given.
	ErrNotConfigured = errors.New("remote: server url not configured")

	// ErrDecode indicates a response body that is not the expected JSON.
	ErrDecode = errors.New("remote: undecodable response")

	// ErrNotFound is wrapped by a 404 StatusError.
	ErrNotFound = service.ErrNotFound

	// ErrValidation is wrapped by a 400 StatusError.
	ErrValidation = service.ErrValidation
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 4 << 10

// StatusError is returned for a non-2xx response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote: HTTP %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("remote: HTTP %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps 404 to ErrNotFound and 400 to ErrValidation.
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrValidation
	default:
		return nil
	}
}

// Client talks to an antigone server. Requests are not retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client, and with it the timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) { cl.userAgent = ua }
}

// NewClient creates a Client for the server at cfg.ServerURL(), which
// includes the base path.
func NewClient(cfg config.RemoteConfig, opts ...Option) (*Client, error) {
	if !cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}
	c := &Client{
		baseURL:    cfg.ServerURL(),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		userAgent:  "antigone-reader/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the server URL requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// Line returns line n. A number the server has no text for is returned as
// a missing line, not an error.
func (c *Client) Line(ctx context.Context, n int) (text.Line, error) {
	var lines []dto.Line
	err := c.get(ctx, "/lines/"+strconv.Itoa(n), nil, &lines)
	if errors.Is(err, ErrNotFound) {
		return text.NewMissingLine(n), nil
	}
	if err != nil {
		return text.Line{}, err
	}
	if len(lines) == 0 {
		return text.NewMissingLine(n), nil
	}
	return lines[0].ToDomain(), nil
}

// Lines returns the lines in [start, end] in ascending order.
func (c *Client) Lines(ctx context.Context, start, end int) ([]text.Line, error) {
	var lines []dto.Line
	path := fmt.Sprintf("/lines/%d/%d", start, end)
	if err := c.get(ctx, path, nil, &lines); err != nil {
		return nil, err
	}
	return toLines(lines), nil
}

// Range is Lines under the text.LineStore name.
func (c *Client) Range(ctx context.Context, start, end int) ([]text.Line, error) {
	return c.Lines(ctx, start, end)
}

// Page returns a reading page.
func (c *Client) Page(ctx context.Context, page int) ([]text.Line, error) {
	var lines []dto.Line
	if err := c.get(ctx, "/read/"+strconv.Itoa(page), nil, &lines); err != nil {
		return nil, err
	}
	return toLines(lines), nil
}

// Lookup returns every entry for a word form. The word is sent as is,
// escaped only for the URL path.
func (c *Client) Lookup(ctx context.Context, word string) ([]lexicon.Entry, error) {
	var entries []dto.Entry
	if err := c.get(ctx, "/word-details/"+url.PathEscape(word), nil, &entries); err != nil {
		return nil, err
	}
	return dto.EntriesToDomain(entries), nil
}

// Search runs a word or definition search.
func (c *Client) Search(ctx context.Context, mode, q string) ([]lexicon.Entry, error) {
	var entries []dto.Entry
	params := url.Values{"mode": {mode}, "q": {q}}
	if err := c.get(ctx, "/search", params, &entries); err != nil {
		return nil, err
	}
	return dto.EntriesToDomain(entries), nil
}

// Speakers returns the speakers of the text.
func (c *Client) Speakers(ctx context.Context) ([]string, error) {
	var speakers []string
	if err := c.get(ctx, "/get_all_speakers", nil, &speakers); err != nil {
		return nil, err
	}
	if speakers == nil {
		speakers = []string{}
	}
	return speakers, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return nil
}

// statusError builds a StatusError, taking the message from a JSON error
// body or the first line of a plain one.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload dto.Error
	message := ""
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		message = payload.Error
	} else {
		message, _, _ = strings.Cut(strings.TrimSpace(string(body)), "\n")
	}
	return &StatusError{StatusCode: resp.StatusCode, Message: message}
}

func toLines(lines []dto.Line) []text.Line {
	out := make([]text.Line, len(lines))
	for i, l := range lines {
		out[i] = l.ToDomain()
	}
	return out
}
