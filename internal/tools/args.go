package tools

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Args are the named arguments of a request as decoded from JSON.
type Args map[string]any

// String returns a required, non-empty string argument.
func (a Args) String(name string) (string, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return "", newError(KindInvalidArgument, "missing required argument %q", name)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", newError(KindInvalidArgument, "argument %q must be a string, got %T", name, v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", newError(KindInvalidArgument, "missing required argument %q", name)
	}
	return s, nil
}

// StringOr returns an optional string argument, def when absent or empty.
func (a Args) StringOr(name, def string) (string, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return def, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", newError(KindInvalidArgument, "argument %q must be a string, got %T", name, v)
	}
	if s = strings.TrimSpace(s); s == "" {
		return def, nil
	}
	return s, nil
}

// IntOr returns an optional integer argument, def when absent. JSON numbers
// and decimal numeric strings are accepted when they hold a whole value.
func (a Args) IntOr(name string, def int) (int, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return def, nil
	}
	invalid := newError(KindInvalidArgument, "argument %q must be an integer, got %v", name, v)

	var d decimal.Decimal
	switch n := v.(type) {
	case bool:
		return 0, invalid
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return def, nil
		}
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return 0, invalid
		}
		d = parsed
	case float64:
		d = decimal.NewFromFloat(n)
	case float32:
		d = decimal.NewFromFloat32(n)
	case json.Number:
		parsed, err := decimal.NewFromString(n.String())
		if err != nil {
			return 0, invalid
		}
		d = parsed
	default:
		i, err := cast.ToIntE(v)
		if err != nil {
			return 0, invalid
		}
		return i, nil
	}
	if !d.IsInteger() || d.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, invalid
	}
	return int(d.IntPart()), nil
}
