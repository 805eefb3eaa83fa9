package yahoo

import (
	"net/http"
	"net/url"
	"sync"
)

const (
	baseURL   = "https://query2.finance.yahoo.com"
	rootURL   = "https://finance.yahoo.com"
	cookieURL = "https://fc.yahoo.com"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=yahoo_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Yahoo Finance JSON API.
type Client struct {
	// baseURL is the base URL of the query API.
	baseURL string
	// rootURL is the base URL of the finance site, used by the news stream.
	rootURL string
	// cookieURL hands out the session cookie the crumb is bound to.
	cookieURL string
	// httpClient is the HTTP client. It must keep cookies between calls
	// for the crumb session to work.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains additional query parameters to be sent with each request.
	query url.Values

	mu    sync.Mutex
	crumb string
}

// ClientOption is a configuration option for the Yahoo Finance client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the query API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithRootURL sets the base URL of the finance site.
func WithRootURL(rootURL string) ClientOption {
	return func(c *Client) {
		c.rootURL = rootURL
	}
}

// WithCookieURL sets the URL that issues the session cookie.
func WithCookieURL(cookieURL string) ClientOption {
	return func(c *Client) {
		c.cookieURL = cookieURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithCrumb presets the session crumb, skipping the crumb handshake.
func WithCrumb(crumb string) ClientOption {
	return func(c *Client) {
		c.crumb = crumb
	}
}

// NewClient creates a new Yahoo Finance client.
func NewClient(options ...ClientOption) (*Client, error) {
	var client = &Client{
		baseURL:    baseURL,
		rootURL:    rootURL,
		cookieURL:  cookieURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		query:      url.Values{},
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}
