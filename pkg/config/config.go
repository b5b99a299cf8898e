package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/daaquan/gmocoin-connector/pkg/logger"
	"github.com/daaquan/gmocoin-connector/pkg/schema"
)

// EnvPrefix is prepended to every environment variable, e.g. GMO_COIN_FX_API_KEY.
const EnvPrefix = "GMO_COIN"

const (
	DefaultCryptoEndpoint = "https://api.coin.z.com"
	DefaultFxEndpoint     = "https://forex-api.coin.z.com"
)

// Config holds endpoints and credentials for both markets. The unprefixed
// Endpoint, APIKey and APISecret fields are the legacy unified settings and
// only apply when the market specific value is empty.
type Config struct {
	CryptoEndpoint  string `toml:"crypto_endpoint" split_words:"true"`
	FxEndpoint      string `toml:"fx_endpoint" split_words:"true"`
	Endpoint        string `toml:"endpoint"`
	CryptoAPIKey    string `toml:"crypto_api_key" split_words:"true"`
	CryptoAPISecret string `toml:"crypto_api_secret" split_words:"true"`
	FxAPIKey        string `toml:"fx_api_key" split_words:"true"`
	FxAPISecret     string `toml:"fx_api_secret" split_words:"true"`
	APIKey          string `toml:"api_key" split_words:"true"`
	APISecret       string `toml:"api_secret" split_words:"true"`
	TimeoutSeconds  int    `toml:"timeout_seconds" split_words:"true"`
	LogLevel        string `toml:"log_level" split_words:"true"`
}

// Credentials is the resolved connection setting for one market.
type Credentials struct {
	Endpoint  string
	APIKey    string
	APISecret string
}

// HasCredentials reports whether both key and secret are present.
func (c Credentials) HasCredentials() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// Resolve picks the market specific value, then the legacy value. Endpoints
// finally fall back to the public GMO Coin host of the market.
func (c Config) Resolve(market schema.MarketType) Credentials {
	var cr Credentials
	switch market {
	case schema.FX:
		cr = Credentials{
			Endpoint:  first(c.FxEndpoint, c.Endpoint, DefaultFxEndpoint),
			APIKey:    first(c.FxAPIKey, c.APIKey),
			APISecret: first(c.FxAPISecret, c.APISecret),
		}
	default:
		cr = Credentials{
			Endpoint:  first(c.CryptoEndpoint, c.Endpoint, DefaultCryptoEndpoint),
			APIKey:    first(c.CryptoAPIKey, c.APIKey),
			APISecret: first(c.CryptoAPISecret, c.APISecret),
		}
	}
	return cr
}

// Timeout returns the HTTP timeout, zero when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Options selects the sources Load reads from.
type Options struct {
	// EnvFiles are dotenv files loaded into the process environment.
	// Missing files are skipped. Variables already set are not overridden.
	EnvFiles []string
	// File is an optional TOML file.
	File string
}

// Load builds a Config from the TOML file, then overlays GMO_COIN_*
// environment variables on top of it.
func Load(opts Options) (Config, error) {
	var cfg Config

	for _, path := range opts.EnvFiles {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			logger.Debug("dotenv 文件不存在, 跳过: %s", path)
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return cfg, fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	if opts.File != "" {
		if _, err := toml.DecodeFile(opts.File, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config file %s: %w", opts.File, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}
