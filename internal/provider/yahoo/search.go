package yahoo

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
)

// SearchQuote is a quote hit of the search endpoint.
type SearchQuote struct {
	Symbol    string  `json:"symbol"`
	ShortName string  `json:"shortname"`
	LongName  string  `json:"longname"`
	Exchange  string  `json:"exchange"`
	QuoteType string  `json:"quoteType"`
	Sector    string  `json:"sector"`
	Industry  string  `json:"industry"`
	Score     float64 `json:"score"`
}

// SearchNews is a news hit of the search endpoint.
type SearchNews struct {
	UUID                string   `json:"uuid"`
	Title               string   `json:"title"`
	Publisher           string   `json:"publisher"`
	Link                string   `json:"link"`
	ProviderPublishTime int64    `json:"providerPublishTime"`
	Type                string   `json:"type"`
	RelatedTickers      []string `json:"relatedTickers"`
}

// SearchResponse holds the hits of a search.
type SearchResponse struct {
	Quotes []SearchQuote `json:"quotes"`
	News   []SearchNews  `json:"news"`
}

// Search looks up quotes and news matching query.
func (c *Client) Search(ctx context.Context, query string, quotesCount, newsCount int) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("quotesCount", strconv.Itoa(quotesCount))
	q.Set("newsCount", strconv.Itoa(newsCount))
	q.Set("enableFuzzyQuery", "false")
	q.Set("quotesQueryId", "tss_match_phrase_query")
	q.Set("newsQueryId", "news_cie_vespa")

	b, err := c.get(ctx, c.baseURL+"/v1/finance/search", q)
	if err != nil {
		return nil, errors.Wrapf(err, "search %q", query)
	}

	var res SearchResponse
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, errors.Wrapf(err, "decoding search %q", query)
	}
	return &res, nil
}
