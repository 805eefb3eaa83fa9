package yahoo

import (
	"context"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

// DefaultInfoModules are the quoteSummary modules that make up a ticker's
// info record.
var DefaultInfoModules = []string{
	"financialData",
	"quoteType",
	"defaultKeyStatistics",
	"assetProfile",
	"summaryDetail",
}

// Field is a single flattened quoteSummary value.
type Field struct {
	Module string
	Key    string
	Value  any
}

// QuoteSummary retrieves the given modules for symbol and flattens them into
// fields in payload order. Values of the form {"raw": .., "fmt": ..} are
// collapsed to their raw value; empty objects and "maxAge" are dropped.
func (c *Client) QuoteSummary(ctx context.Context, symbol string, modules ...string) ([]Field, error) {
	if len(modules) == 0 {
		modules = DefaultInfoModules
	}
	crumb, err := c.Crumb(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("modules", strings.Join(modules, ","))
	query.Set("formatted", "false")
	query.Set("corsDomain", "finance.yahoo.com")
	query.Set("symbol", symbol)
	query.Set("crumb", crumb)

	b, err := c.get(ctx, c.baseURL+"/v10/finance/quoteSummary/"+url.PathEscape(symbol), query)
	if err != nil {
		return nil, errors.Wrapf(err, "quote summary %s", symbol)
	}

	envelope := gjson.GetBytes(b, "quoteSummary")
	if !envelope.Exists() {
		return nil, errors.Errorf("decoding quote summary %s: missing envelope", symbol)
	}
	if err := resultError(envelope); err != nil {
		return nil, errors.Wrapf(err, "quote summary %s", symbol)
	}
	result := envelope.Get("result.0")
	if !result.Exists() || !result.IsObject() {
		return nil, errors.Wrapf(ErrNotFound, "quote not found for symbol: %s", symbol)
	}

	var fields []Field
	result.ForEach(func(module, data gjson.Result) bool {
		if !data.IsObject() {
			return true
		}
		data.ForEach(func(key, value gjson.Result) bool {
			if key.String() == "maxAge" {
				return true
			}
			v, ok := collapse(value)
			if !ok {
				return true
			}
			fields = append(fields, Field{Module: module.String(), Key: key.String(), Value: v})
			return true
		})
		return true
	})
	return fields, nil
}

// collapse converts a gjson value to plain Go values, replacing
// {"raw": .., "fmt": ..} wrappers with raw. It reports false for values
// that carry nothing (null, empty objects).
func collapse(r gjson.Result) (any, bool) {
	switch {
	case r.Type == gjson.Null:
		return nil, false
	case r.IsObject():
		if raw := r.Get("raw"); raw.Exists() {
			return collapse(raw)
		}
		out := map[string]any{}
		r.ForEach(func(k, v gjson.Result) bool {
			if cv, ok := collapse(v); ok {
				out[k.String()] = cv
			}
			return true
		})
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	case r.IsArray():
		out := []any{}
		for _, v := range r.Array() {
			if cv, ok := collapse(v); ok {
				out = append(out, cv)
			}
		}
		return out, true
	default:
		return r.Value(), true
	}
}
