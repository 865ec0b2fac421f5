package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"task-console/pkg/paginator"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task console specifics
	TaskAPI TaskAPIConfig
	Browser BrowserConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string // IANA name for typed due dates; empty means local
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// TaskAPIConfig points at the remote REST resource that stores tasks.
type TaskAPIConfig struct {
	BaseURL     string // root; the client appends /tasks
	AccessToken string // optional bearer token
}

type BrowserConfig struct {
	PageSize        int
	BulkDeleteDelay time.Duration
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/task-console/
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/task-console/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Environment.Timezone = viper.GetString("environment.timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Remote task resource
	cfg.TaskAPI.BaseURL = strings.TrimRight(viper.GetString("task_api.base_url"), "/")
	cfg.TaskAPI.AccessToken = viper.GetString("task_api.access_token")
	if token := viper.GetString("task_api_token"); token != "" {
		cfg.TaskAPI.AccessToken = token
	}

	// Browser
	cfg.Browser.PageSize = paginator.ClampPageSize(viper.GetInt("browser.page_size"))
	cfg.Browser.BulkDeleteDelay = viper.GetDuration("browser.bulk_delete_delay")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 600)

	viper.SetDefault("task_api.base_url", "https://6979ed46cc9c576a8e184139.mockapi.io/api/v1")

	viper.SetDefault("browser.page_size", paginator.DefaultPageSize)
	viper.SetDefault("browser.bulk_delete_delay", "100ms")
}

func validate(cfg *Config) error {
	if cfg.TaskAPI.BaseURL == "" {
		return fmt.Errorf("task_api.base_url is required")
	}
	u, err := url.Parse(cfg.TaskAPI.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("task_api.base_url %q is not an absolute URL", cfg.TaskAPI.BaseURL)
	}
	if cfg.Browser.BulkDeleteDelay < 0 {
		return fmt.Errorf("browser.bulk_delete_delay must not be negative")
	}
	return nil
}
