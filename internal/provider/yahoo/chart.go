package yahoo

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

// ChartParams selects a chart series. Range is used unless both Period1
// and Period2 are set.
type ChartParams struct {
	Range    string
	Interval string
	Period1  time.Time
	Period2  time.Time
}

// ChartMeta is the metadata of a chart series.
type ChartMeta struct {
	Currency             string `json:"currency"`
	Symbol               string `json:"symbol"`
	ExchangeName         string `json:"exchangeName"`
	InstrumentType       string `json:"instrumentType"`
	ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	PriceHint            int    `json:"priceHint"`
	DataGranularity      string `json:"dataGranularity"`
	Range                string `json:"range"`
}

// ChartQuote holds the OHLCV columns of a series. Missing samples are nil.
type ChartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// Dividend is a dividend event of a series.
type Dividend struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

// Split is a stock split event of a series.
type Split struct {
	Date        int64   `json:"date"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	SplitRatio  string  `json:"splitRatio"`
}

// Chart is a price series.
type Chart struct {
	Meta       ChartMeta
	Timestamps []int64
	Quote      ChartQuote
	Dividends  map[string]Dividend
	Splits     map[string]Split
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta      ChartMeta `json:"meta"`
			Timestamp []int64   `json:"timestamp"`
			Events    struct {
				Dividends map[string]Dividend `json:"dividends"`
				Splits    map[string]Split    `json:"splits"`
			} `json:"events"`
			Indicators struct {
				Quote []ChartQuote `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Chart retrieves the price series of symbol.
func (c *Client) Chart(ctx context.Context, symbol string, p ChartParams) (*Chart, error) {
	query := url.Values{}
	if !p.Period1.IsZero() && !p.Period2.IsZero() {
		query.Set("period1", strconv.FormatInt(p.Period1.Unix(), 10))
		query.Set("period2", strconv.FormatInt(p.Period2.Unix(), 10))
	} else {
		query.Set("range", p.Range)
	}
	query.Set("interval", p.Interval)
	query.Set("includePrePost", "false")
	query.Set("events", "div,splits")

	b, err := c.get(ctx, c.baseURL+"/v8/finance/chart/"+url.PathEscape(symbol), query)
	if err != nil {
		return nil, errors.Wrapf(err, "chart %s", symbol)
	}

	var res chartResponse
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, errors.Wrapf(err, "decoding chart %s", symbol)
	}
	if e := res.Chart.Error; e != nil {
		if e.Code == "Not Found" {
			return nil, errors.Wrapf(ErrNotFound, "chart %s: %s", symbol, e.Description)
		}
		return nil, errors.Errorf("chart %s: %s", symbol, e.Description)
	}
	if len(res.Chart.Result) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "chart %s: no data", symbol)
	}

	r := res.Chart.Result[0]
	chart := &Chart{
		Meta:       r.Meta,
		Timestamps: r.Timestamp,
		Dividends:  r.Events.Dividends,
		Splits:     r.Events.Splits,
	}
	if len(r.Indicators.Quote) > 0 {
		chart.Quote = r.Indicators.Quote[0]
	}
	return chart, nil
}
