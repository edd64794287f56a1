package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"` // current application environment (local, dev, production etc)
	TelegramAPIToken string    `mapstructure:"-"`   // Telegram API token loaded from environment
	Quiz             Quiz      `mapstructure:"quiz"`
	Streak           Streak    `mapstructure:"streak"`
	Storage          Storage   `mapstructure:"storage"`
	DB               DB        `mapstructure:"database"` // database configuration section
	Redis            Redis     `mapstructure:"redis"`
	HTTP             HTTP      `mapstructure:"http"`
	Scheduler        Scheduler `mapstructure:"scheduler"`
}

// Quiz configures the daily quiz source and sessions.
type Quiz struct {
	BaseURL    string        `mapstructure:"base_url"`    // quiz documents are served at {base_url}/{YYYY-MM-DD}.json
	Timeout    time.Duration `mapstructure:"timeout"`     // HTTP timeout of a quiz fetch
	SessionTTL time.Duration `mapstructure:"session_ttl"` // idle sessions older than this are swept
	Cache      string        `mapstructure:"cache"`       // "" or "redis"
	Timezone   string        `mapstructure:"timezone"`    // timezone that decides the calendar day
}

type Streak struct {
	GapPolicy string `mapstructure:"gap_policy"` // "reset" or "preserve"
}

type Storage struct {
	Driver string `mapstructure:"driver"` // memory, postgres or redis
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"-"`
	DB       int    `mapstructure:"db"`
}

type HTTP struct {
	Addr string `mapstructure:"addr"` // empty disables the ops server
}

// Scheduler holds cron specs of background jobs. An empty spec disables the job.
type Scheduler struct {
	Prefetch string `mapstructure:"prefetch"`
	Announce string `mapstructure:"announce"`
	Sweep    string `mapstructure:"sweep"`
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// UsesRedis reports whether any component needs a Redis connection.
func (c *Config) UsesRedis() bool {
	return c.Storage.Driver == DriverRedis || c.Quiz.Cache == DriverRedis
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine, real environment variables take precedence.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("quiz.timeout", "10s")
	v.SetDefault("quiz.session_ttl", "24h")
	v.SetDefault("quiz.cache", "")
	v.SetDefault("quiz.timezone", "UTC")
	v.SetDefault("streak.gap_policy", "reset")
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("scheduler.prefetch", "5 0 * * *")
	v.SetDefault("scheduler.announce", "0 9 * * *")
	v.SetDefault("scheduler.sweep", "*/15 * * * *")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_password", "REDIS_PASSWORD")
	_ = v.BindEnv("quiz.base_url", "QUIZ_URL")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")
	cfg.Redis.Password = v.GetString("redis_password")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	var missing []string

	if c.TelegramAPIToken == "" {
		missing = append(missing, "TELEGRAM_API_TOKEN")
	}
	if c.Quiz.BaseURL == "" {
		missing = append(missing, "QUIZ_URL")
	}
	if c.Storage.Driver == DriverPostgres && c.DB.URL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.UsesRedis() && c.Redis.Addr == "" {
		missing = append(missing, "REDIS_ADDR")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEnvironmentVariables, strings.Join(missing, ", "))
	}

	switch c.Storage.Driver {
	case DriverMemory, DriverPostgres, DriverRedis:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Quiz.Cache {
	case "", DriverRedis:
	default:
		return fmt.Errorf("unknown quiz cache %q", c.Quiz.Cache)
	}

	return nil
}
