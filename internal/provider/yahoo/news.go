package yahoo

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/cockroachdb/errors"
)

// Article is an item of the ticker news stream.
type Article struct {
	ID          string
	Title       string
	Summary     string
	Provider    string
	URL         string
	PubDate     string
	ContentType string
}

type newsPayload struct {
	ServiceConfig newsServiceConfig `json:"serviceConfig"`
}

type newsServiceConfig struct {
	SnippetCount int      `json:"snippetCount"`
	Symbols      []string `json:"s"`
}

type newsResponse struct {
	Data struct {
		TickerStream struct {
			Stream []struct {
				ID      string          `json:"id"`
				Ad      json.RawMessage `json:"ad"`
				Content struct {
					ID          string `json:"id"`
					ContentType string `json:"contentType"`
					Title       string `json:"title"`
					Summary     string `json:"summary"`
					Description string `json:"description"`
					PubDate     string `json:"pubDate"`
					Provider    struct {
						DisplayName string `json:"displayName"`
					} `json:"provider"`
					CanonicalURL struct {
						URL string `json:"url"`
					} `json:"canonicalUrl"`
					ClickThroughURL struct {
						URL string `json:"url"`
					} `json:"clickThroughUrl"`
				} `json:"content"`
			} `json:"stream"`
		} `json:"tickerStream"`
	} `json:"data"`
}

// News retrieves up to count recent articles about symbol. Sponsored
// entries of the stream are skipped.
func (c *Client) News(ctx context.Context, symbol string, count int) ([]Article, error) {
	if count <= 0 {
		count = 10
	}
	query := url.Values{}
	query.Set("queryRef", "latestNews")
	query.Set("serviceKey", "ncp_fin")

	b, err := c.postJSON(ctx, c.rootURL+"/xhr/ncp", query, newsPayload{
		ServiceConfig: newsServiceConfig{SnippetCount: count, Symbols: []string{symbol}},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "news %s", symbol)
	}

	var res newsResponse
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, errors.Wrapf(err, "decoding news %s", symbol)
	}

	articles := make([]Article, 0, len(res.Data.TickerStream.Stream))
	for _, item := range res.Data.TickerStream.Stream {
		if len(item.Ad) > 0 && string(item.Ad) != "null" {
			continue
		}
		content := item.Content
		id := content.ID
		if id == "" {
			id = item.ID
		}
		summary := content.Summary
		if summary == "" {
			summary = content.Description
		}
		link := content.CanonicalURL.URL
		if link == "" {
			link = content.ClickThroughURL.URL
		}
		articles = append(articles, Article{
			ID:          id,
			Title:       content.Title,
			Summary:     summary,
			Provider:    content.Provider.DisplayName,
			URL:         link,
			PubDate:     content.PubDate,
			ContentType: content.ContentType,
		})
	}
	return articles, nil
}
