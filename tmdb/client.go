package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the TMDb v3 API root
const DefaultBaseURL = "https://api.themoviedb.org/3/"

// Client represents a TMDb API client
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new TMDb client. The client holds no mutable state
// across calls, so a single instance may be shared between goroutines.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    options.baseURL,
		apiKey:     apiKey,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// TestConnection verifies the client can reach TMDb with the configured key
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.GetConfiguration(ctx); err != nil {
		return fmt.Errorf("failed to connect to TMDb: %w", err)
	}
	return nil
}

// request performs a single HTTP round trip and returns the raw response
// body. Transport failures and non-2xx statuses surface as *Error; the
// remote API's own status codes live in the JSON body and are left to the
// response models.
func (c *Client) request(ctx context.Context, method, requestURL string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, newError(KindInvalidURL, "", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making TMDb API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError(KindConnectionFailed, "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindConnectionFailed, "", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{
			Kind:       KindHTTPError,
			StatusCode: resp.StatusCode,
			Response:   string(raw),
			cause:      fmt.Errorf("unexpected status code %d", resp.StatusCode),
		}
	}

	return raw, nil
}

// do executes a typed request: serialize the optional body, perform the
// round trip, and map the response onto out. Every endpoint method is a thin
// composition over this helper.
func (c *Client) do(ctx context.Context, method, requestURL string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return newError(KindUnknown, "", fmt.Errorf("failed to serialize request body: %w", err))
		}
	}

	raw, err := c.request(ctx, method, requestURL, payload)
	if err != nil {
		return err
	}

	return c.decode(raw, out)
}
