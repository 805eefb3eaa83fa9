package tools

import (
	"context"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"yfmcp/internal/provider"
)

// SearchType selects which part of a search result is returned.
type SearchType string

const (
	SearchAll    SearchType = "all"
	SearchQuotes SearchType = "quotes"
	SearchNews   SearchType = "news"
)

// SearchTypes lists the accepted search types.
var SearchTypes = []string{string(SearchAll), string(SearchQuotes), string(SearchNews)}

var searchDef = Definition{
	Name:        OpSearch,
	Description: "Fetch quotes and news matching a query (company name, symbol or keyword) from Yahoo Finance.",
	Params: []Param{
		{Name: "query", Type: "string", Required: true, Description: "The search query"},
		{
			Name:        "search_type",
			Type:        "string",
			Default:     string(SearchAll),
			Enum:        SearchTypes,
			Description: "Which results to return: all, quotes or news",
		},
	},
}

func (r *Router) search(ctx context.Context, args Args) (Result, error) {
	query, err := args.String("query")
	if err != nil {
		return Result{}, err
	}
	raw, err := args.StringOr("search_type", string(SearchAll))
	if err != nil {
		return Result{}, err
	}
	st := SearchType(strings.ToLower(raw))
	if !slices.Contains(SearchTypes, string(st)) {
		return Result{}, newError(KindValidation,
			"invalid search_type %q: must be one of %s", raw, strings.Join(SearchTypes, ", "))
	}

	res, err := r.provider.Search(ctx, query)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to search for %q", query)
	}
	if res == nil {
		res = &provider.SearchResult{}
	}
	if res.Quotes == nil {
		res.Quotes = []provider.SearchQuote{}
	}
	if res.News == nil {
		res.News = []provider.SearchNews{}
	}

	var out any
	switch st {
	case SearchQuotes:
		out = res.Quotes
	case SearchNews:
		out = res.News
	default:
		out = res
	}
	text, err := encodeJSON(out)
	if err != nil {
		return Result{}, err
	}
	return success(text), nil
}
