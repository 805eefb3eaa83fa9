package yahoo

import (
	"context"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

// Fund is a ranked ETF or mutual fund of a sector.
type Fund struct {
	Symbol string
	Name   string
}

// SectorCompany is a ranked company of a sector.
type SectorCompany struct {
	Symbol       string
	Name         string
	Rating       string
	MarketWeight float64
}

// IndustryRef names an industry within a sector.
type IndustryRef struct {
	Key          string
	Name         string
	Symbol       string
	MarketWeight float64
}

// Sector is the overview of a sector domain.
type Sector struct {
	Key            string
	Name           string
	Symbol         string
	TopETFs        []Fund
	TopMutualFunds []Fund
	TopCompanies   []SectorCompany
	Industries     []IndustryRef
}

// GrowthCompany is a ranked growth company of an industry.
type GrowthCompany struct {
	Symbol         string
	Name           string
	YTDReturn      float64
	GrowthEstimate float64
}

// PerformingCompany is a ranked performing company of an industry.
type PerformingCompany struct {
	Symbol      string
	Name        string
	YTDReturn   float64
	LastPrice   float64
	TargetPrice float64
}

// Industry is the overview of an industry domain.
type Industry struct {
	Key                    string
	Name                   string
	SectorKey              string
	TopGrowthCompanies     []GrowthCompany
	TopPerformingCompanies []PerformingCompany
}

// Sector retrieves the sector domain identified by key, e.g. "technology".
func (c *Client) Sector(ctx context.Context, key string) (*Sector, error) {
	data, err := c.domain(ctx, "sectors", key)
	if err != nil {
		return nil, err
	}

	s := &Sector{
		Key:    key,
		Name:   data.Get("name").String(),
		Symbol: data.Get("symbol").String(),
	}
	for _, f := range data.Get("topETFs").Array() {
		s.TopETFs = append(s.TopETFs, Fund{Symbol: f.Get("symbol").String(), Name: f.Get("name").String()})
	}
	for _, f := range data.Get("topMutualFunds").Array() {
		s.TopMutualFunds = append(s.TopMutualFunds, Fund{Symbol: f.Get("symbol").String(), Name: f.Get("name").String()})
	}
	for _, co := range data.Get("topCompanies").Array() {
		s.TopCompanies = append(s.TopCompanies, SectorCompany{
			Symbol:       co.Get("symbol").String(),
			Name:         co.Get("name").String(),
			Rating:       rawString(co, "rating"),
			MarketWeight: rawFloat(co, "marketWeight"),
		})
	}
	for _, ind := range data.Get("industries").Array() {
		// The first entry summarizes the whole sector and has no key.
		if ind.Get("key").String() == "" {
			continue
		}
		s.Industries = append(s.Industries, IndustryRef{
			Key:          ind.Get("key").String(),
			Name:         ind.Get("name").String(),
			Symbol:       ind.Get("symbol").String(),
			MarketWeight: rawFloat(ind, "marketWeight"),
		})
	}
	return s, nil
}

// Industry retrieves the industry domain identified by key, e.g. "semiconductors".
func (c *Client) Industry(ctx context.Context, key string) (*Industry, error) {
	data, err := c.domain(ctx, "industries", key)
	if err != nil {
		return nil, err
	}

	ind := &Industry{
		Key:       key,
		Name:      data.Get("name").String(),
		SectorKey: data.Get("sectorKey").String(),
	}
	for _, co := range data.Get("topGrowthCompanies").Array() {
		ind.TopGrowthCompanies = append(ind.TopGrowthCompanies, GrowthCompany{
			Symbol:         co.Get("symbol").String(),
			Name:           co.Get("name").String(),
			YTDReturn:      rawFloat(co, "ytdReturn"),
			GrowthEstimate: rawFloat(co, "growthEstimate"),
		})
	}
	for _, co := range data.Get("topPerformingCompanies").Array() {
		ind.TopPerformingCompanies = append(ind.TopPerformingCompanies, PerformingCompany{
			Symbol:      co.Get("symbol").String(),
			Name:        co.Get("name").String(),
			YTDReturn:   rawFloat(co, "ytdReturn"),
			LastPrice:   rawFloat(co, "lastPrice"),
			TargetPrice: rawFloat(co, "targetPrice"),
		})
	}
	return ind, nil
}

func (c *Client) domain(ctx context.Context, kind, key string) (gjson.Result, error) {
	query := url.Values{}
	query.Set("formatted", "true")
	query.Set("withReturns", "true")
	query.Set("lang", "en-US")
	query.Set("region", "US")

	b, err := c.get(ctx, c.baseURL+"/v1/finance/"+kind+"/"+url.PathEscape(key), query)
	if err != nil {
		return gjson.Result{}, errors.Wrapf(err, "%s %s", kind, key)
	}
	if !gjson.ValidBytes(b) {
		return gjson.Result{}, errors.Errorf("decoding %s %s: invalid json", kind, key)
	}
	doc := gjson.ParseBytes(b)
	if err := resultError(doc); err != nil {
		return gjson.Result{}, errors.Wrapf(err, "%s %s", kind, key)
	}
	data := doc.Get("data")
	if !data.Exists() || data.Type == gjson.Null {
		return gjson.Result{}, errors.Wrapf(ErrNotFound, "%s %s: no data", kind, key)
	}
	return data, nil
}

// rawFloat reads a number that may be wrapped as {"raw": .., "fmt": ..}.
func rawFloat(r gjson.Result, key string) float64 {
	v := r.Get(key)
	if raw := v.Get("raw"); raw.Exists() {
		return raw.Float()
	}
	return v.Float()
}

// rawString reads a string that may be wrapped as {"raw": .., "fmt": ..},
// preferring the formatted representation.
func rawString(r gjson.Result, key string) string {
	v := r.Get(key)
	if v.IsObject() {
		if f := v.Get("fmt"); f.Exists() {
			return f.String()
		}
		return v.Get("raw").String()
	}
	return v.String()
}
