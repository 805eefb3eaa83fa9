package tools

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"yfmcp/internal/provider"
)

const (
	DefaultPeriod   = "1mo"
	DefaultInterval = "1d"
)

// Periods and Intervals are the values Yahoo Finance accepts. They are
// advertised as hints and passed through unvalidated.
var (
	Periods   = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}
	Intervals = []string{"1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h", "1d", "5d", "1wk", "1mo", "3mo"}
)

var priceHistoryDef = Definition{
	Name:        OpPriceHistory,
	Description: "Get historical OHLCV price data for a given ticker symbol from Yahoo Finance.",
	Params: []Param{
		{Name: "symbol", Type: "string", Required: true, Description: "The ticker symbol of the stock, e.g. \"AAPL\""},
		{Name: "period", Type: "string", Default: DefaultPeriod, Enum: Periods, Description: "Range of the series"},
		{Name: "interval", Type: "string", Default: DefaultInterval, Enum: Intervals, Description: "Sampling interval of the series"},
	},
}

var profitLossDef = Definition{
	Name:        OpProfitLoss,
	Description: "Calculate the profit or loss of holding one share of a ticker between two dates, using daily closing prices.",
	Params: []Param{
		{Name: "symbol", Type: "string", Required: true, Description: "The ticker symbol of the stock, e.g. \"AAPL\""},
		{Name: "start_date", Type: "string", Required: true, Description: "Start date in YYYY-MM-DD format"},
		{Name: "end_date", Type: "string", Required: true, Description: "End date in YYYY-MM-DD format"},
	},
}

func (r *Router) priceHistory(ctx context.Context, args Args) (Result, error) {
	symbol, err := args.String("symbol")
	if err != nil {
		return Result{}, err
	}
	period, err := args.StringOr("period", DefaultPeriod)
	if err != nil {
		return Result{}, err
	}
	interval, err := args.StringOr("interval", DefaultInterval)
	if err != nil {
		return Result{}, err
	}

	bars, err := r.provider.PriceHistory(ctx, symbol, provider.HistoryQuery{Period: period, Interval: interval})
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to get price history for %q", symbol)
	}
	if bars == nil {
		bars = []provider.PriceBar{}
	}

	text, err := encodeJSON(bars)
	if err != nil {
		return Result{}, err
	}
	return success(text), nil
}

// ProfitLoss is the outcome of holding one share between two dates.
type ProfitLoss struct {
	Symbol        string   `json:"symbol"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	StartPrice    float64  `json:"start_price"`
	EndPrice      float64  `json:"end_price"`
	ProfitLoss    float64  `json:"profit_loss"`
	PercentChange *float64 `json:"percent_change"`
}

var dateLayouts = []string{time.DateOnly, time.RFC3339, "2006-01-02T15:04:05"}

func parseDate(name, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, newError(KindValidation, "invalid %s %q: expected YYYY-MM-DD", name, value)
}

func (r *Router) profitLoss(ctx context.Context, args Args) (Result, error) {
	symbol, err := args.String("symbol")
	if err != nil {
		return Result{}, err
	}
	rawStart, err := args.String("start_date")
	if err != nil {
		return Result{}, err
	}
	rawEnd, err := args.String("end_date")
	if err != nil {
		return Result{}, err
	}
	start, err := parseDate("start_date", rawStart)
	if err != nil {
		return Result{}, err
	}
	end, err := parseDate("end_date", rawEnd)
	if err != nil {
		return Result{}, err
	}
	if !start.Before(end) {
		return Result{}, newError(KindValidation, "start_date %s must be earlier than end_date %s", rawStart, rawEnd)
	}

	bars, err := r.provider.PriceHistory(ctx, symbol, provider.HistoryQuery{
		Interval: DefaultInterval,
		Start:    start,
		End:      end.AddDate(0, 0, 1),
	})
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to get price history for %q", symbol)
	}
	if len(bars) == 0 {
		return Result{}, newError(KindEmpty,
			"no historical data for %q between %s and %s: check the symbol and that the dates cover trading days",
			symbol, rawStart, rawEnd)
	}

	first := decimal.NewFromFloat(bars[0].Close)
	last := decimal.NewFromFloat(bars[len(bars)-1].Close)
	diff := last.Sub(first)

	out := ProfitLoss{
		Symbol:     symbol,
		StartDate:  rawStart,
		EndDate:    rawEnd,
		StartPrice: first.InexactFloat64(),
		EndPrice:   last.InexactFloat64(),
		ProfitLoss: diff.InexactFloat64(),
	}
	if !first.IsZero() {
		pct := diff.Div(first).Mul(decimal.NewFromInt(100)).Round(4).InexactFloat64()
		out.PercentChange = &pct
	}

	text, err := encodeJSON(out)
	if err != nil {
		return Result{}, err
	}
	return success(text), nil
}
