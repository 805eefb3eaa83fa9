package yahoo

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
)

// Crumb returns the session crumb, establishing the session on first use.
// The crumb is bound to the cookie set by the cookie URL, so the HTTP client
// must carry a cookie jar.
func (c *Client) Crumb(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.crumb != "" {
		return c.crumb, nil
	}

	// The cookie endpoint answers 404 but still sets the cookie.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cookieURL, http.NoBody)
	if err != nil {
		return "", errors.Wrap(err, "creating cookie request")
	}
	req.Header = c.header.Clone()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "requesting session cookie")
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxBody))
	res.Body.Close()

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/test/getcrumb", http.NoBody)
	if err != nil {
		return "", errors.Wrap(err, "creating crumb request")
	}
	req.Header = c.header.Clone()
	res, err = c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "requesting crumb")
	}
	defer res.Body.Close()

	b, err := io.ReadAll(io.LimitReader(res.Body, 1<<10))
	if err != nil {
		return "", errors.Wrap(err, "reading crumb")
	}
	if res.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}
	crumb := strings.TrimSpace(string(b))
	if res.StatusCode != http.StatusOK || crumb == "" || strings.ContainsAny(crumb, "<{") {
		return "", errors.Wrapf(ErrUnauthorized, "no crumb issued (status %d)", res.StatusCode)
	}

	logger.KV(xlog.DEBUG, "status", "session_established")
	c.crumb = crumb
	return crumb, nil
}

func (c *Client) resetCrumb() {
	c.mu.Lock()
	c.crumb = ""
	c.mu.Unlock()
}
