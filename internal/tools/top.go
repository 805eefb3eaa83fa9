package tools

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"yfmcp/internal/provider"
)

// TopType selects a sector top-list.
type TopType string

const (
	TopETFs                TopType = "top_etfs"
	TopMutualFunds         TopType = "top_mutual_funds"
	TopCompanies           TopType = "top_companies"
	TopGrowthCompanies     TopType = "top_growth_companies"
	TopPerformingCompanies TopType = "top_performing_companies"
)

// DefaultTopN is the list length used when top_n is omitted.
const DefaultTopN = 10

// TopTypes lists the accepted top types.
var TopTypes = []string{
	string(TopETFs),
	string(TopMutualFunds),
	string(TopCompanies),
	string(TopGrowthCompanies),
	string(TopPerformingCompanies),
}

// Sectors lists the sector keys known to Yahoo Finance. It is advertised
// as a hint and not enforced.
var Sectors = []string{
	"basic-materials",
	"communication-services",
	"consumer-cyclical",
	"consumer-defensive",
	"energy",
	"financial-services",
	"healthcare",
	"industrials",
	"real-estate",
	"technology",
	"utilities",
}

var topDef = Definition{
	Name:        OpTop,
	Description: "Get top entities (ETFs, mutual funds, companies, growth companies, or performing companies) in a sector from Yahoo Finance.",
	Params: []Param{
		{Name: "sector", Type: "string", Required: true, Enum: Sectors, Description: "The sector to get, e.g. \"technology\""},
		{Name: "top_type", Type: "string", Required: true, Enum: TopTypes, Description: "Type of top list to retrieve"},
		{Name: "top_n", Type: "integer", Default: DefaultTopN, Description: "Number of top entities to retrieve"},
	},
}

func (r *Router) top(ctx context.Context, args Args) (Result, error) {
	sector, err := args.String("sector")
	if err != nil {
		return Result{}, err
	}
	raw, err := args.String("top_type")
	if err != nil {
		return Result{}, err
	}
	topN, err := args.IntOr("top_n", DefaultTopN)
	if err != nil {
		return Result{}, err
	}
	tt := TopType(raw)
	if !slices.Contains(TopTypes, raw) {
		return Result{}, newError(KindValidation,
			"invalid top_type %q: must be one of %s", raw, strings.Join(TopTypes, ", "))
	}

	switch tt {
	case TopETFs:
		funds, err := r.provider.TopETFs(ctx, sector)
		return fundResult(funds, err, "ETFs", sector, topN)
	case TopMutualFunds:
		funds, err := r.provider.TopMutualFunds(ctx, sector)
		return fundResult(funds, err, "mutual funds", sector, topN)
	case TopCompanies:
		companies, err := r.provider.TopCompanies(ctx, sector)
		if err != nil {
			return Result{}, errors.Wrapf(err, "failed to get top companies for sector %q", sector)
		}
		if len(companies) == 0 {
			return Result{}, newError(KindEmpty, "no top companies available for %s sector", sector)
		}
		text, err := encodeJSON(limit(companies, topN))
		if err != nil {
			return Result{}, err
		}
		return success(text), nil
	case TopGrowthCompanies:
		groups, err := r.provider.TopGrowthCompanies(ctx, sector)
		if err != nil {
			return Result{}, errors.Wrapf(err, "failed to get top growth companies for sector %q", sector)
		}
		return groupResult(groups, string(tt), "growth companies", sector, topN)
	default:
		groups, err := r.provider.TopPerformingCompanies(ctx, sector)
		if err != nil {
			return Result{}, errors.Wrapf(err, "failed to get top performing companies for sector %q", sector)
		}
		return groupResult(groups, string(tt), "performing companies", sector, topN)
	}
}

func fundResult(funds []provider.Fund, err error, what, sector string, topN int) (Result, error) {
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to get top %s for sector %q", what, sector)
	}
	if len(funds) == 0 {
		return Result{}, newError(KindEmpty, "no top %s available for %s sector", what, sector)
	}
	lines := make([]string, 0, len(funds))
	for _, f := range limit(funds, topN) {
		lines = append(lines, fmt.Sprintf("%s: %s", f.Symbol, f.Name))
	}
	return success(strings.Join(lines, "\n")), nil
}

// groupResult renders each industry as its own JSON document keyed by key.
func groupResult[T any](groups []provider.IndustryGroup[T], key, what, sector string, topN int) (Result, error) {
	docs := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g.Companies) == 0 {
			continue
		}
		industry, err := encodeJSON(g.Industry)
		if err != nil {
			return Result{}, err
		}
		companies, err := encodeJSON(limit(g.Companies, topN))
		if err != nil {
			return Result{}, err
		}
		docs = append(docs, fmt.Sprintf(`{"industry":%s,%q:%s}`, industry, key, companies))
	}
	if len(docs) == 0 {
		return Result{}, newError(KindEmpty, "no top %s available for %s sector", what, sector)
	}
	return Result{Text: "[" + strings.Join(docs, ",") + "]", Groups: docs}, nil
}

// limit returns at most n leading elements, none when n <= 0.
func limit[T any](s []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n < len(s) {
		return s[:n]
	}
	return s
}
