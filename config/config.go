package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Enrollment assistant specifics
	Backend BackendConfig
	Storage StorageConfig
	Chat    ChatConfig
	Cache   CacheConfig
	Task    TaskConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the remote job-processing API.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StorageConfig struct {
	SQLitePath string
}

type ChatConfig struct {
	Timeout time.Duration
}

// CacheConfig sizes the per-surface response cache.
type CacheConfig struct {
	TTL            time.Duration
	Capacity       int
	MaxQueryLength int
}

type TaskConfig struct {
	SingleInterval   time.Duration
	BulkInterval     time.Duration
	MaxBulkCount     int
	SubmitRatePerMin int
	InboxURL         string
	ObserverBuffer   int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = splitList(viper.GetString("http_server.allowed_origins"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	var err error

	// Backend
	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}
	if cfg.Backend.Timeout, err = duration("backend.timeout"); err != nil {
		return nil, err
	}

	// Storage
	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")
	if sqlitePath := viper.GetString("sqlite_path"); sqlitePath != "" {
		cfg.Storage.SQLitePath = sqlitePath
	}

	// Chat & cache
	if cfg.Chat.Timeout, err = duration("chat.timeout"); err != nil {
		return nil, err
	}
	if cfg.Cache.TTL, err = duration("cache.ttl"); err != nil {
		return nil, err
	}
	cfg.Cache.Capacity = viper.GetInt("cache.capacity")
	cfg.Cache.MaxQueryLength = viper.GetInt("cache.max_query_length")

	// Tasks
	if cfg.Task.SingleInterval, err = duration("task.single_poll_interval"); err != nil {
		return nil, err
	}
	if cfg.Task.BulkInterval, err = duration("task.bulk_poll_interval"); err != nil {
		return nil, err
	}
	cfg.Task.MaxBulkCount = viper.GetInt("task.bulk_max_count")
	cfg.Task.SubmitRatePerMin = viper.GetInt("task.submit_rate_per_min")
	cfg.Task.InboxURL = viper.GetString("task.inbox_url")
	cfg.Task.ObserverBuffer = viper.GetInt("task.observer_buffer")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.allowed_origins", "")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.base_url", "http://localhost:8000/api")
	viper.SetDefault("backend.timeout", "15s")
	viper.SetDefault("storage.sqlite_path", "data/enrollment-assistant.sqlite")

	viper.SetDefault("chat.timeout", "30s")
	viper.SetDefault("cache.ttl", "1h")
	viper.SetDefault("cache.capacity", 50)
	viper.SetDefault("cache.max_query_length", 150)

	viper.SetDefault("task.single_poll_interval", "3s")
	viper.SetDefault("task.bulk_poll_interval", "5s")
	viper.SetDefault("task.bulk_max_count", 20)
	viper.SetDefault("task.submit_rate_per_min", 30)
	viper.SetDefault("task.observer_buffer", 32)
}

func validate(cfg *Config) error {
	if cfg.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if cfg.Storage.SQLitePath == "" {
		return fmt.Errorf("storage.sqlite_path is required")
	}
	if cfg.Cache.Capacity <= 0 {
		return fmt.Errorf("cache.capacity must be positive, got %d", cfg.Cache.Capacity)
	}
	if cfg.Task.MaxBulkCount <= 0 {
		return fmt.Errorf("task.bulk_max_count must be positive, got %d", cfg.Task.MaxBulkCount)
	}
	return nil
}

// duration parses a positive Go duration string such as "30s".
func duration(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}

// splitList splits a comma separated value, since viper does not parse
// lists from env reliably.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
