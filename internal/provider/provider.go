package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrNotFound is marked on errors caused by a symbol, sector or industry
// the upstream does not know about. Use MarkNotFound to classify an error so
// both errors.Is from the standard library and cockroachdb/errors match it.
var ErrNotFound = errors.New("not found")

// MarkNotFound classifies err as ErrNotFound and keeps its message and chain.
func MarkNotFound(err error) error {
	if err == nil {
		return nil
	}
	return &notFoundError{cause: errors.Mark(err, ErrNotFound)}
}

type notFoundError struct {
	cause error
}

func (e *notFoundError) Error() string { return e.cause.Error() }

func (e *notFoundError) Unwrap() error { return e.cause }

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

// TickerInfo is the flattened info record of a ticker. Field order follows
// the upstream payload so the encoded JSON reads the way the provider sent it.
type TickerInfo struct {
	Symbol string
	Fields *orderedmap.OrderedMap[string, any]
}

// NewTickerInfo returns an empty record for symbol.
func NewTickerInfo(symbol string) *TickerInfo {
	return &TickerInfo{Symbol: symbol, Fields: orderedmap.New[string, any]()}
}

// Get returns a field value.
func (t *TickerInfo) Get(key string) (any, bool) {
	if t == nil || t.Fields == nil {
		return nil, false
	}
	return t.Fields.Get(key)
}

// Len returns the number of fields.
func (t *TickerInfo) Len() int {
	if t == nil || t.Fields == nil {
		return 0
	}
	return t.Fields.Len()
}

// MarshalJSON encodes the fields in insertion order without HTML escaping.
func (t *TickerInfo) MarshalJSON() ([]byte, error) {
	if t == nil || t.Fields == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	put := func(v any) error {
		if err := enc.Encode(v); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	buf.WriteByte('{')
	for pair := t.Fields.Oldest(); pair != nil; pair = pair.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		if err := put(pair.Key); err != nil {
			return nil, errors.Wrapf(err, "encoding field %q", pair.Key)
		}
		buf.WriteByte(':')
		if err := put(pair.Value); err != nil {
			return nil, errors.Wrapf(err, "encoding field %q", pair.Key)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NewsItem is a single article related to a ticker.
type NewsItem struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Source      string    `json:"source"`
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at,omitzero"`
}

// SearchQuote is a quote hit of a search.
type SearchQuote struct {
	Symbol    string  `json:"symbol"`
	ShortName string  `json:"shortname,omitempty"`
	LongName  string  `json:"longname,omitempty"`
	Exchange  string  `json:"exchange,omitempty"`
	QuoteType string  `json:"quoteType,omitempty"`
	Sector    string  `json:"sector,omitempty"`
	Industry  string  `json:"industry,omitempty"`
	Score     float64 `json:"score,omitempty"`
}

// SearchNews is a news hit of a search.
type SearchNews struct {
	UUID           string    `json:"uuid"`
	Title          string    `json:"title"`
	Publisher      string    `json:"publisher,omitempty"`
	Link           string    `json:"link,omitempty"`
	PublishedAt    time.Time `json:"published_at,omitzero"`
	Type           string    `json:"type,omitempty"`
	RelatedTickers []string  `json:"relatedTickers,omitempty"`
}

// SearchResult splits search hits into quotes and news.
type SearchResult struct {
	Quotes []SearchQuote `json:"quotes"`
	News   []SearchNews  `json:"news"`
}

// Fund is an ETF or mutual fund entry of a sector top-list.
type Fund struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Company is an entry of a sector's top companies.
type Company struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Rating       string  `json:"rating,omitempty"`
	MarketWeight float64 `json:"market_weight"`
}

// GrowthCompany is an entry of an industry's top growth companies.
type GrowthCompany struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	YTDReturn      float64 `json:"ytd_return"`
	GrowthEstimate float64 `json:"growth_estimate"`
}

// PerformingCompany is an entry of an industry's top performing companies.
type PerformingCompany struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	YTDReturn   float64 `json:"ytd_return"`
	LastPrice   float64 `json:"last_price"`
	TargetPrice float64 `json:"target_price"`
}

// IndustryGroup holds the ranked companies of one industry within a sector.
type IndustryGroup[T any] struct {
	Industry  string
	Companies []T
}

// PriceBar is one OHLCV sample of a price series.
type PriceBar struct {
	Time        time.Time `json:"date"`
	Open        float64   `json:"open"`
	High        float64   `json:"high"`
	Low         float64   `json:"low"`
	Close       float64   `json:"close"`
	Volume      int64     `json:"volume"`
	Dividends   float64   `json:"dividends,omitempty"`
	StockSplits float64   `json:"stock_splits,omitempty"`
}

// HistoryQuery selects a price series either by Period or by the
// half-open [Start, End) range when both bounds are set.
type HistoryQuery struct {
	Period   string
	Interval string
	Start    time.Time
	End      time.Time
}

// Provider is the upstream source of market data.
//
//go:generate mockgen -package=tools_test -destination=../tools/mock_provider_test.go -source=provider.go Provider
type Provider interface {
	TickerInfo(ctx context.Context, symbol string) (*TickerInfo, error)
	TickerNews(ctx context.Context, symbol string) ([]NewsItem, error)
	Search(ctx context.Context, query string) (*SearchResult, error)
	TopETFs(ctx context.Context, sector string) ([]Fund, error)
	TopMutualFunds(ctx context.Context, sector string) ([]Fund, error)
	TopCompanies(ctx context.Context, sector string) ([]Company, error)
	TopGrowthCompanies(ctx context.Context, sector string) ([]IndustryGroup[GrowthCompany], error)
	TopPerformingCompanies(ctx context.Context, sector string) ([]IndustryGroup[PerformingCompany], error)
	PriceHistory(ctx context.Context, symbol string, q HistoryQuery) ([]PriceBar, error)
}
