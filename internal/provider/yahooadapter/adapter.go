package yahooadapter

import (
	"context"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"yfmcp/internal/provider"
	"yfmcp/internal/provider/yahoo"
)

var logger = xlog.NewPackageLogger("yfmcp", "yahooadapter")

// API is the subset of the Yahoo Finance client the adapter needs.
type API interface {
	QuoteSummary(ctx context.Context, symbol string, modules ...string) ([]yahoo.Field, error)
	News(ctx context.Context, symbol string, count int) ([]yahoo.Article, error)
	Search(ctx context.Context, query string, quotesCount, newsCount int) (*yahoo.SearchResponse, error)
	Sector(ctx context.Context, key string) (*yahoo.Sector, error)
	Industry(ctx context.Context, key string) (*yahoo.Industry, error)
	Chart(ctx context.Context, symbol string, p yahoo.ChartParams) (*yahoo.Chart, error)
}

type Config struct {
	NewsCount         int // articles requested per ticker, default 10
	SearchQuotesCount int // default 8
	SearchNewsCount   int // default 8
	// IndustryConcurrency bounds the industry requests issued for the
	// grouped top-lists of a sector. Defaults to 4.
	IndustryConcurrency int
	// InfoModules overrides the quoteSummary modules of a ticker info record.
	InfoModules []string
}

// Adapter implements provider.Provider over the Yahoo Finance client.
type Adapter struct {
	cfg Config
	api API
}

var _ provider.Provider = (*Adapter)(nil)

func New(cfg Config, api API) *Adapter {
	if cfg.NewsCount <= 0 {
		cfg.NewsCount = 10
	}
	if cfg.SearchQuotesCount <= 0 {
		cfg.SearchQuotesCount = 8
	}
	if cfg.SearchNewsCount <= 0 {
		cfg.SearchNewsCount = 8
	}
	if cfg.IndustryConcurrency <= 0 {
		cfg.IndustryConcurrency = 4
	}
	if len(cfg.InfoModules) == 0 {
		cfg.InfoModules = yahoo.DefaultInfoModules
	}
	return &Adapter{cfg: cfg, api: api}
}

// dateSuffixes mark info fields holding epoch seconds.
var dateSuffixes = []string{"date", "start", "end", "timestamp", "time", "quarter"}

func (a *Adapter) TickerInfo(ctx context.Context, symbol string) (*provider.TickerInfo, error) {
	fields, err := a.api.QuoteSummary(ctx, symbol, a.cfg.InfoModules...)
	if err != nil {
		return nil, classify(err)
	}

	info := provider.NewTickerInfo(symbol)
	for _, f := range fields {
		v := f.Value
		if isDateKey(f.Key) {
			if ts, ok := formatEpoch(v); ok {
				v = ts
			} else {
				logger.ContextKV(ctx, xlog.DEBUG,
					"reason", "not_epoch",
					"symbol", symbol,
					"key", f.Key,
					"value", v)
			}
		}
		info.Fields.Set(f.Key, v)
	}
	return info, nil
}

func (a *Adapter) TickerNews(ctx context.Context, symbol string) ([]provider.NewsItem, error) {
	articles, err := a.api.News(ctx, symbol, a.cfg.NewsCount)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]provider.NewsItem, 0, len(articles))
	for _, art := range articles {
		item := provider.NewsItem{
			ID:      art.ID,
			Title:   art.Title,
			Content: art.Summary,
			Source:  art.Provider,
			URL:     art.URL,
		}
		if art.PubDate != "" {
			if ts, err := time.Parse(time.RFC3339, art.PubDate); err == nil {
				item.PublishedAt = ts.UTC()
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (a *Adapter) Search(ctx context.Context, query string) (*provider.SearchResult, error) {
	res, err := a.api.Search(ctx, query, a.cfg.SearchQuotesCount, a.cfg.SearchNewsCount)
	if err != nil {
		return nil, classify(err)
	}
	out := &provider.SearchResult{
		Quotes: make([]provider.SearchQuote, 0, len(res.Quotes)),
		News:   make([]provider.SearchNews, 0, len(res.News)),
	}
	for _, q := range res.Quotes {
		out.Quotes = append(out.Quotes, provider.SearchQuote{
			Symbol:    q.Symbol,
			ShortName: q.ShortName,
			LongName:  q.LongName,
			Exchange:  q.Exchange,
			QuoteType: q.QuoteType,
			Sector:    q.Sector,
			Industry:  q.Industry,
			Score:     q.Score,
		})
	}
	for _, n := range res.News {
		item := provider.SearchNews{
			UUID:           n.UUID,
			Title:          n.Title,
			Publisher:      n.Publisher,
			Link:           n.Link,
			Type:           n.Type,
			RelatedTickers: n.RelatedTickers,
		}
		if n.ProviderPublishTime > 0 {
			item.PublishedAt = time.Unix(n.ProviderPublishTime, 0).UTC()
		}
		out.News = append(out.News, item)
	}
	return out, nil
}

func (a *Adapter) TopETFs(ctx context.Context, sector string) ([]provider.Fund, error) {
	s, err := a.api.Sector(ctx, sector)
	if err != nil {
		return nil, classify(err)
	}
	return funds(s.TopETFs), nil
}

func (a *Adapter) TopMutualFunds(ctx context.Context, sector string) ([]provider.Fund, error) {
	s, err := a.api.Sector(ctx, sector)
	if err != nil {
		return nil, classify(err)
	}
	return funds(s.TopMutualFunds), nil
}

func (a *Adapter) TopCompanies(ctx context.Context, sector string) ([]provider.Company, error) {
	s, err := a.api.Sector(ctx, sector)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]provider.Company, 0, len(s.TopCompanies))
	for _, c := range s.TopCompanies {
		out = append(out, provider.Company{
			Symbol:       c.Symbol,
			Name:         c.Name,
			Rating:       c.Rating,
			MarketWeight: c.MarketWeight,
		})
	}
	return out, nil
}

func (a *Adapter) TopGrowthCompanies(ctx context.Context, sector string) ([]provider.IndustryGroup[provider.GrowthCompany], error) {
	return byIndustry(ctx, a, sector, func(ind *yahoo.Industry) []provider.GrowthCompany {
		out := make([]provider.GrowthCompany, 0, len(ind.TopGrowthCompanies))
		for _, c := range ind.TopGrowthCompanies {
			out = append(out, provider.GrowthCompany{
				Symbol:         c.Symbol,
				Name:           c.Name,
				YTDReturn:      c.YTDReturn,
				GrowthEstimate: c.GrowthEstimate,
			})
		}
		return out
	})
}

func (a *Adapter) TopPerformingCompanies(ctx context.Context, sector string) ([]provider.IndustryGroup[provider.PerformingCompany], error) {
	return byIndustry(ctx, a, sector, func(ind *yahoo.Industry) []provider.PerformingCompany {
		out := make([]provider.PerformingCompany, 0, len(ind.TopPerformingCompanies))
		for _, c := range ind.TopPerformingCompanies {
			out = append(out, provider.PerformingCompany{
				Symbol:      c.Symbol,
				Name:        c.Name,
				YTDReturn:   c.YTDReturn,
				LastPrice:   c.LastPrice,
				TargetPrice: c.TargetPrice,
			})
		}
		return out
	})
}

// byIndustry fetches every industry of sector and picks one ranking from
// each. Groups keep the sector's industry order; industries the upstream
// has no data for are skipped.
func byIndustry[T any](ctx context.Context, a *Adapter, sector string, pick func(*yahoo.Industry) []T) ([]provider.IndustryGroup[T], error) {
	s, err := a.api.Sector(ctx, sector)
	if err != nil {
		return nil, classify(err)
	}

	groups := make([]*provider.IndustryGroup[T], len(s.Industries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.IndustryConcurrency)
	for i, ref := range s.Industries {
		g.Go(func() error {
			ind, err := a.api.Industry(gctx, ref.Key)
			if errors.Is(err, yahoo.ErrNotFound) {
				logger.ContextKV(gctx, xlog.DEBUG,
					"reason", "industry_not_found",
					"sector", sector,
					"industry", ref.Key)
				return nil
			}
			if err != nil {
				return err
			}
			companies := pick(ind)
			if len(companies) == 0 {
				return nil
			}
			groups[i] = &provider.IndustryGroup[T]{Industry: ref.Key, Companies: companies}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, classify(errors.Wrapf(err, "sector %s industries", sector))
	}

	out := make([]provider.IndustryGroup[T], 0, len(groups))
	for _, grp := range groups {
		if grp != nil {
			out = append(out, *grp)
		}
	}
	return out, nil
}

func (a *Adapter) PriceHistory(ctx context.Context, symbol string, q provider.HistoryQuery) ([]provider.PriceBar, error) {
	chart, err := a.api.Chart(ctx, symbol, yahoo.ChartParams{
		Range:    q.Period,
		Interval: q.Interval,
		Period1:  q.Start,
		Period2:  q.End,
	})
	if err != nil {
		return nil, classify(err)
	}
	return bars(chart, q.Interval), nil
}

// bars zips the chart columns into rounded bars ordered by time. Samples
// without a close are dropped.
func bars(chart *yahoo.Chart, interval string) []provider.PriceBar {
	loc := time.UTC
	if tz := chart.Meta.ExchangeTimezoneName; tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}
	hint := chart.Meta.PriceHint
	if hint <= 0 {
		hint = 2
	}
	daily := isDailyOrLonger(interval)

	quote := chart.Quote
	out := make([]provider.PriceBar, 0, len(chart.Timestamps))
	for i, ts := range chart.Timestamps {
		closing := at(quote.Close, i)
		if closing == nil {
			continue
		}
		t := time.Unix(ts, 0).In(loc)
		if daily {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		}
		bar := provider.PriceBar{
			Time:  t,
			Open:  round(at(quote.Open, i), hint),
			High:  round(at(quote.High, i), hint),
			Low:   round(at(quote.Low, i), hint),
			Close: round(closing, hint),
		}
		if v := at(quote.Volume, i); v != nil {
			bar.Volume = *v
		}
		key := strconv.FormatInt(ts, 10)
		if d, ok := chart.Dividends[key]; ok {
			bar.Dividends = d.Amount
		}
		if s, ok := chart.Splits[key]; ok && s.Denominator != 0 {
			bar.StockSplits = s.Numerator / s.Denominator
		}
		out = append(out, bar)
	}
	slices.SortStableFunc(out, func(x, y provider.PriceBar) int {
		return x.Time.Compare(y.Time)
	})
	return out
}

func isDailyOrLonger(interval string) bool {
	switch interval {
	case "1d", "5d", "1wk", "1mo", "3mo":
		return true
	}
	return false
}

func at[T any](col []*T, i int) *T {
	if i < len(col) {
		return col[i]
	}
	return nil
}

func round(v *float64, places int) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return decimal.NewFromFloat(*v).Round(int32(places)).InexactFloat64()
}

func funds(in []yahoo.Fund) []provider.Fund {
	out := make([]provider.Fund, 0, len(in))
	for _, f := range in {
		out = append(out, provider.Fund{Symbol: f.Symbol, Name: f.Name})
	}
	return out
}

func isDateKey(key string) bool {
	k := strings.ToLower(key)
	for _, s := range dateSuffixes {
		if strings.HasSuffix(k, s) {
			return true
		}
	}
	return false
}

func formatEpoch(v any) (string, bool) {
	var sec int64
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return "", false
		}
		sec = int64(n)
	case int64:
		sec = n
	case int:
		sec = int64(n)
	default:
		return "", false
	}
	return time.Unix(sec, 0).UTC().Format(time.DateTime), true
}

// classify marks upstream lookup failures with provider.ErrNotFound.
func classify(err error) error {
	if errors.Is(err, yahoo.ErrNotFound) {
		return provider.MarkNotFound(err)
	}
	return err
}
