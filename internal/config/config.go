package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Fetch     FetchConfig     `yaml:"fetch" mapstructure:"fetch"`
	Dispatch  DispatchConfig  `yaml:"dispatch" mapstructure:"dispatch"`
	Registry  RegistryConfig  `yaml:"registry" mapstructure:"registry"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// FetchConfig configures page fetching.
type FetchConfig struct {
	Mode           string  `yaml:"mode" mapstructure:"mode"` // "browser" or "http"
	SettleSecs     int     `yaml:"settle_secs" mapstructure:"settle_secs"`
	RequestsPerSec float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
	BrowserBin     string  `yaml:"browser_bin" mapstructure:"browser_bin"`
	Headless       bool    `yaml:"headless" mapstructure:"headless"`
}

// DispatchConfig bounds the fetch fan-out.
type DispatchConfig struct {
	Concurrency      int `yaml:"concurrency" mapstructure:"concurrency"`
	FetchTimeoutSecs int `yaml:"fetch_timeout_secs" mapstructure:"fetch_timeout_secs"`
}

// RegistryConfig points at an optional source catalog file.
type RegistryConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port    int `yaml:"port" mapstructure:"port"`
	MaxJobs int `yaml:"max_jobs" mapstructure:"max_jobs"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// SettleDelay returns the fetch settle delay as a duration.
func (c FetchConfig) SettleDelay() time.Duration {
	return time.Duration(c.SettleSecs) * time.Second
}

// FetchTimeout returns the per-source fetch budget as a duration.
func (c DispatchConfig) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSecs) * time.Second
}

// Validate checks that the settings required for the given mode are
// present and sane. Modes: "analyze", "serve".
func (c *Config) Validate(mode string) error {
	var missing []string

	check := func(ok bool, msg string) {
		if !ok {
			missing = append(missing, msg)
		}
	}

	switch mode {
	case "analyze":
		check(c.Anthropic.Key != "", "anthropic.key is required")
		check(c.Store.DatabaseURL != "", "store.database_url is required")
	case "serve":
		check(c.Anthropic.Key != "", "anthropic.key is required")
		check(c.Store.DatabaseURL != "", "store.database_url is required")
		check(c.Server.Port > 0, "server.port must be > 0")
		check(c.Server.MaxJobs >= 1 && c.Server.MaxJobs <= 50, "server.max_jobs must be between 1 and 50")
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	check(c.Store.Driver == "sqlite" || c.Store.Driver == "postgres",
		"store.driver must be sqlite or postgres")
	check(c.Dispatch.Concurrency >= 1 && c.Dispatch.Concurrency <= 100,
		"dispatch.concurrency must be between 1 and 100")
	check(c.Fetch.Mode == "browser" || c.Fetch.Mode == "http",
		"fetch.mode must be browser or http")

	if len(missing) > 0 {
		return eris.Errorf("config: %s", strings.Join(missing, "; "))
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("INTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "intel.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_jobs", 4)
	v.SetDefault("dispatch.concurrency", 10)
	v.SetDefault("dispatch.fetch_timeout_secs", 15)
	v.SetDefault("fetch.mode", "browser")
	v.SetDefault("fetch.settle_secs", 2)
	v.SetDefault("fetch.requests_per_sec", 0)
	v.SetDefault("fetch.headless", true)
	v.SetDefault("anthropic.model", "claude-sonnet-4-5")
	v.SetDefault("anthropic.max_tokens", 2048)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
