package yahoo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/tidwall/gjson"
)

var logger = xlog.NewPackageLogger("yfmcp", "yahoo")

// maxBody caps how much of a response body is read.
const maxBody = 16 << 20

var (
	// ErrNotFound is returned when the upstream does not know the requested
	// symbol, sector or industry.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the session cookie or crumb is rejected.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRateLimited is returned on HTTP 429.
	ErrRateLimited = errors.New("rate limited")
)

// get performs a GET against rawURL with the client's default query merged
// with query and returns the response body.
func (c *Client) get(ctx context.Context, rawURL string, query url.Values) ([]byte, error) {
	return c.send(ctx, http.MethodGet, rawURL, query, nil)
}

// postJSON performs a POST with a JSON encoded payload.
func (c *Client) postJSON(ctx context.Context, rawURL string, query url.Values, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encoding payload")
	}
	return c.send(ctx, http.MethodPost, rawURL, query, body)
}

func (c *Client) send(ctx context.Context, method, rawURL string, query url.Values, body []byte) ([]byte, error) {
	q := maps.Clone(c.query)
	if q == nil {
		q = url.Values{}
	}
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	if len(q) > 0 {
		rawURL += "?" + q.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	req.Header = c.header.Clone()
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "performing request")
	}
	defer res.Body.Close()

	b, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}

	switch res.StatusCode {
	case http.StatusOK:
		return b, nil

	case http.StatusBadRequest:
		return nil, errors.Errorf("bad request: %s", upstreamError(b))

	case http.StatusUnauthorized, http.StatusForbidden:
		c.resetCrumb()
		return nil, errors.Wrap(ErrUnauthorized, upstreamError(b))

	case http.StatusNotFound:
		return nil, errors.Wrap(ErrNotFound, upstreamError(b))

	case http.StatusUnprocessableEntity:
		return nil, errors.Errorf("unprocessable request: %s", upstreamError(b))

	case http.StatusTooManyRequests:
		return nil, ErrRateLimited

	default:
		logger.KV(xlog.DEBUG, "status", res.StatusCode, "url", req.URL.Path)
		return nil, errors.Errorf("unexpected status code: %d", res.StatusCode)
	}
}

// upstreamError extracts a readable message from an error payload. Yahoo
// wraps errors as {"<endpoint>": {"error": {"code": .., "description": ..}}}.
func upstreamError(body []byte) string {
	if !gjson.ValidBytes(body) {
		s := strings.TrimSpace(string(body))
		if len(s) > 200 {
			s = s[:200]
		}
		if s == "" {
			return "no details"
		}
		return s
	}
	for _, path := range []string{"*.error.description", "*.error.code", "error.description", "description"} {
		if v := gjson.GetBytes(body, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return "no details"
}

// resultError reports the "error" member of an endpoint envelope, if any.
func resultError(envelope gjson.Result) error {
	e := envelope.Get("error")
	if !e.Exists() || e.Type == gjson.Null {
		return nil
	}
	code := e.Get("code").String()
	desc := e.Get("description").String()
	if desc == "" {
		desc = code
	}
	if strings.EqualFold(code, "Not Found") {
		return errors.Wrap(ErrNotFound, desc)
	}
	return errors.Errorf("upstream error: %s", desc)
}
