// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/magiconair/properties"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/xkilldash9x/veye-maven/internal/payload"
	"github.com/xkilldash9x/veye-maven/internal/scope"
)

// ErrMissingAPIKey is returned when no API key is configured or stored.
var ErrMissingAPIKey = errors.New("no API key configured")

// apiKeyProperty is the key read from the API key properties file.
const apiKeyProperty = "api_key"

// Interface defines the contract for accessing application configuration.
type Interface interface {
	Logger() LoggerConfig
	API() APIConfig
	Project() ProjectConfig
	ResolveAPIKey() (string, error)
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	APICfg     APIConfig     `mapstructure:"api" yaml:"api"`
	ProjectCfg ProjectConfig `mapstructure:"project" yaml:"project"`
}

func (c *Config) Logger() LoggerConfig   { return c.LoggerCfg }
func (c *Config) API() APIConfig         { return c.APICfg }
func (c *Config) Project() ProjectConfig { return c.ProjectCfg }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color names for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// APIConfig locates and authenticates against the tracking service.
type APIConfig struct {
	BaseURL         string        `mapstructure:"base_url" yaml:"base_url"`
	Path            string        `mapstructure:"path" yaml:"path"`
	Key             string        `mapstructure:"key" yaml:"key"`
	KeyFile         string        `mapstructure:"key_file" yaml:"key_file"`
	Timeout         time.Duration `mapstructure:"timeout" yaml:"timeout"`
	IgnoreTLSErrors bool          `mapstructure:"ignore_tls_errors" yaml:"ignore_tls_errors"`
	// ProxyURL overrides the proxy taken from HTTPS_PROXY and friends.
	ProxyURL string `mapstructure:"proxy_url" yaml:"proxy_url"`
}

// ProjectConfig describes the project being reported.
type ProjectConfig struct {
	Pom            string `mapstructure:"pom" yaml:"pom"`
	SkipScopes     string `mapstructure:"skip_scopes" yaml:"skip_scopes"`
	TrackPlugins   bool   `mapstructure:"track_plugins" yaml:"track_plugins"`
	NameStrategy   string `mapstructure:"name_strategy" yaml:"name_strategy"`
	Output         string `mapstructure:"output" yaml:"output"`
	PropertiesFile string `mapstructure:"properties_file" yaml:"properties_file"`
}

// ExcludedScopes returns the parsed skip_scopes list.
func (p ProjectConfig) ExcludedScopes() []string {
	return scope.ParseList(p.SkipScopes)
}

// Strategy returns the parsed naming strategy.
func (p ProjectConfig) Strategy() (payload.NamingStrategy, error) {
	return payload.ParseNamingStrategy(p.NameStrategy)
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for every configuration key.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "veye-maven")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- API --
	v.SetDefault("api.base_url", "https://www.versioneye.com")
	v.SetDefault("api.path", "/api/v2")
	v.SetDefault("api.key", "")
	v.SetDefault("api.key_file", "~/.m2/versioneye.properties")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.ignore_tls_errors", false)
	v.SetDefault("api.proxy_url", "")

	// -- Project --
	v.SetDefault("project.pom", "pom.xml")
	v.SetDefault("project.skip_scopes", "")
	v.SetDefault("project.track_plugins", true)
	v.SetDefault("project.name_strategy", string(payload.NameFromProject))
	v.SetDefault("project.output", "target/pom.json")
	v.SetDefault("project.properties_file", "src/qa/resources/versioneye.properties")
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	_ = v.BindEnv("api.key", "VEYE_API_KEY")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if _, err := c.ProjectCfg.Strategy(); err != nil {
		return fmt.Errorf("project.name_strategy: %w", err)
	}
	if strings.TrimSpace(c.ProjectCfg.Pom) == "" {
		return fmt.Errorf("project.pom must not be empty")
	}
	if err := c.APICfg.Validate(); err != nil {
		return fmt.Errorf("api configuration invalid: %w", err)
	}
	return nil
}

// Validate checks the API settings.
func (a *APIConfig) Validate() error {
	u, err := url.Parse(a.BaseURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL, got %q", a.BaseURL)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be a positive duration")
	}
	if _, err := a.Proxy(); err != nil {
		return err
	}
	return nil
}

// Proxy returns the parsed proxy_url, or nil when none is configured.
func (a *APIConfig) Proxy() (*url.URL, error) {
	raw := strings.TrimSpace(a.ProxyURL)
	if raw == "" {
		return nil, nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("proxy_url must be an absolute URL, got %q", a.ProxyURL)
	}
	return u, nil
}

// ResolveAPIKey returns the configured API key, falling back to the api_key entry
// of the key file. ErrMissingAPIKey is returned when neither yields a key.
func (c *Config) ResolveAPIKey() (string, error) {
	if key := strings.TrimSpace(c.APICfg.Key); key != "" {
		return key, nil
	}
	if c.APICfg.KeyFile == "" {
		return "", ErrMissingAPIKey
	}

	path, err := homedir.Expand(c.APICfg.KeyFile)
	if err != nil {
		return "", fmt.Errorf("failed to expand key file path %s: %w", c.APICfg.KeyFile, err)
	}
	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: set api.key, VEYE_API_KEY or %s in %s", ErrMissingAPIKey, apiKeyProperty, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key file %s: %w", path, err)
	}
	if key := strings.TrimSpace(props.GetString(apiKeyProperty, "")); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("%w: set api.key, VEYE_API_KEY or %s in %s", ErrMissingAPIKey, apiKeyProperty, path)
}
