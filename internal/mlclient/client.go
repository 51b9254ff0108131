package mlclient

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/theblitlabs/gologger"
)

const defaultTimeout = 30 * time.Second

// Client coordinates every call against the ML backend. Operations are
// attempted exactly once: no retry, no backoff, no cancellation beyond the
// caller's context and the transport timeout. Each operation returns its
// payload together with a typed error from the taxonomy in errors.go instead
// of writing to shared state, so concurrent calls cannot mask each other's
// outcomes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a coordinator for the backend at baseURL, e.g.
// "http://localhost:8000".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: gologger.Get().With().Str("component", "mlclient").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newRequest builds a request against the backend with a fresh X-Request-ID.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func isSuccess(status int) bool {
	return status == http.StatusOK || status == http.StatusCreated
}
