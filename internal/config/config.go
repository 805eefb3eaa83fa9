package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type Server struct {
	Transport         string `json:"transport" yaml:"transport" validate:"oneof=stdio http"`
	Port              string `json:"port" yaml:"port" validate:"required,numeric"`
	RequestTimeoutSec int    `json:"request_timeout_sec" yaml:"request_timeout_sec" validate:"gte=1,lte=600"`
}

type Yahoo struct {
	// QueryURL is the JSON API host (quoteSummary, search, chart, sectors).
	QueryURL string `json:"query_url" yaml:"query_url" validate:"required,url"`
	// BaseURL is the finance site host serving the news stream.
	BaseURL             string `json:"base_url" yaml:"base_url" validate:"required,url"`
	CookieURL           string `json:"cookie_url" yaml:"cookie_url" validate:"required,url"`
	UserAgent           string `json:"user_agent" yaml:"user_agent"`
	NewsCount           int    `json:"news_count" yaml:"news_count" validate:"gte=1,lte=100"`
	SearchQuotesCount   int    `json:"search_quotes_count" yaml:"search_quotes_count" validate:"gte=1,lte=50"`
	SearchNewsCount     int    `json:"search_news_count" yaml:"search_news_count" validate:"gte=1,lte=50"`
	IndustryConcurrency int    `json:"industry_concurrency" yaml:"industry_concurrency" validate:"gte=1,lte=32"`
}

type Log struct {
	Level string `json:"level" yaml:"level" validate:"oneof=critical error warning warn notice info debug trace"`
}

type Config struct {
	Server Server `json:"server" yaml:"server"`
	Yahoo  Yahoo  `json:"yahoo" yaml:"yahoo"`
	Log    Log    `json:"log" yaml:"log"`
}

func Default() Config {
	return Config{
		Server: Server{Transport: TransportStdio, Port: "8080", RequestTimeoutSec: 30},
		Yahoo: Yahoo{
			QueryURL:            "https://query2.finance.yahoo.com",
			BaseURL:             "https://finance.yahoo.com",
			CookieURL:           "https://fc.yahoo.com",
			NewsCount:           10,
			SearchQuotesCount:   8,
			SearchNewsCount:     8,
			IndustryConcurrency: 4,
		},
		Log: Log{Level: "info"},
	}
}

// defaultPaths are probed in order when no path is given.
var defaultPaths = []string{"config.json", "config.yaml", "config.yml"}

// Load reads config from path, JSON or YAML by extension. If path is empty
// the working directory is probed for a config file; a missing file yields
// defaults. Environment variables override file values, then the result is
// validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, errors.Wrap(err, "read config")
		}
		if err == nil {
			if err := decode(path, b, &cfg); err != nil {
				return cfg, errors.Wrap(err, "parse config")
			}
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(path string, b []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, cfg)
	default:
		return json.Unmarshal(b, cfg)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("MCP_TRANSPORT"); v != "" {
		cfg.Server.Transport = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("YAHOO_QUERY_URL"); v != "" {
		cfg.Yahoo.QueryURL = v
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.Yahoo.BaseURL = v
	}
	if v := os.Getenv("YAHOO_USER_AGENT"); v != "" {
		cfg.Yahoo.UserAgent = v
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"REQUEST_TIMEOUT_SEC", &cfg.Server.RequestTimeoutSec},
		{"YAHOO_NEWS_COUNT", &cfg.Yahoo.NewsCount},
		{"YAHOO_INDUSTRY_CONCURRENCY", &cfg.Yahoo.IndustryConcurrency},
	}
	for _, o := range ints {
		v := os.Getenv(o.env)
		if v == "" {
			continue
		}
		x, err := cast.ToIntE(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "env %s", o.env)
		}
		*o.dst = x
	}
	return nil
}
