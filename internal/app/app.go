// Package app wires configuration into a ready tool router.
package app

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"yfmcp/internal/config"
	"yfmcp/internal/httpx"
	"yfmcp/internal/provider/yahoo"
	"yfmcp/internal/provider/yahooadapter"
	"yfmcp/internal/tools"
)

var logger = xlog.NewPackageLogger("yfmcp", "app")

// NewRouter builds the HTTP client, the Yahoo client and the provider
// adapter described by cfg and returns the router over them.
func NewRouter(cfg config.Config) (*tools.Router, error) {
	httpClient, err := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)
	if err != nil {
		return nil, err
	}
	if cfg.Yahoo.UserAgent != "" {
		httpClient.UserAgent = cfg.Yahoo.UserAgent
	}

	client, err := yahoo.NewClient(
		yahoo.WithBaseURL(cfg.Yahoo.QueryURL),
		yahoo.WithRootURL(cfg.Yahoo.BaseURL),
		yahoo.WithCookieURL(cfg.Yahoo.CookieURL),
		yahoo.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, errors.Wrap(err, "yahoo client")
	}

	adapter := yahooadapter.New(yahooadapter.Config{
		NewsCount:           cfg.Yahoo.NewsCount,
		SearchQuotesCount:   cfg.Yahoo.SearchQuotesCount,
		SearchNewsCount:     cfg.Yahoo.SearchNewsCount,
		IndustryConcurrency: cfg.Yahoo.IndustryConcurrency,
	}, client)

	logger.KV(xlog.DEBUG,
		"status", "router_ready",
		"query_url", cfg.Yahoo.QueryURL,
		"industry_concurrency", cfg.Yahoo.IndustryConcurrency)
	return tools.New(adapter), nil
}
