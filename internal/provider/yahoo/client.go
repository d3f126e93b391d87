package yahoo

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"stockmcp/internal/quote"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=yahoo_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches market data from the Yahoo Finance web API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient performs the outbound requests.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// name identifies this source in normalized quotes.
	name string
}

// Option is a configuration option for the Yahoo client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) Option {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// New creates a Yahoo Finance client.
func New(options ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		name:       "yahoo",
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Client) Name() string { return c.name }

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func newGet(ctx context.Context, url string, header http.Header) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	return req, nil
}

// checkStatus maps a non-2xx upstream status to the error taxonomy:
// 5xx and 429 are treated as transient, anything else as unusable data.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return quote.Unavailablef("upstream status %d: %s", resp.StatusCode, string(b))
	}
	return quote.Malformedf("upstream status %d: %s", resp.StatusCode, string(b))
}

func requestErr(err error) error {
	return quote.Unavailablef("upstream request: %v", err)
}

func decodeErr(err error) error {
	return quote.Malformedf("decode upstream response: %v", err)
}
