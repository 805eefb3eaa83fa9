package tools

import (
	"context"

	"github.com/cockroachdb/errors"
	"yfmcp/internal/provider"
)

var tickerInfoDef = Definition{
	Name: OpTickerInfo,
	Description: "Get stock information for a given ticker symbol from Yahoo Finance. " +
		"Includes company profile, financial summary, trading metrics and governance data.",
	Params: []Param{
		{Name: "symbol", Type: "string", Required: true, Description: "The ticker symbol of the stock, e.g. \"AAPL\""},
	},
}

var tickerNewsDef = Definition{
	Name:        OpTickerNews,
	Description: "Get news for a given ticker symbol from Yahoo Finance.",
	Params: []Param{
		{Name: "symbol", Type: "string", Required: true, Description: "The ticker symbol of the stock, e.g. \"AAPL\""},
	},
}

func (r *Router) tickerInfo(ctx context.Context, args Args) (Result, error) {
	symbol, err := args.String("symbol")
	if err != nil {
		return Result{}, err
	}

	info, err := r.provider.TickerInfo(ctx, symbol)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to get ticker info for %q", symbol)
	}
	if info.Len() == 0 {
		return Result{}, newError(KindNotFound, "no information available for symbol %q", symbol)
	}

	text, err := encodeJSON(info)
	if err != nil {
		return Result{}, err
	}
	return success(text), nil
}

func (r *Router) tickerNews(ctx context.Context, args Args) (Result, error) {
	symbol, err := args.String("symbol")
	if err != nil {
		return Result{}, err
	}

	items, err := r.provider.TickerNews(ctx, symbol)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to get news for %q", symbol)
	}
	if items == nil {
		items = []provider.NewsItem{}
	}

	text, err := encodeJSON(items)
	if err != nil {
		return Result{}, err
	}
	return success(text), nil
}
