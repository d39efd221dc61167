package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env        string     `mapstructure:"env" validate:"oneof=local dev production"` // current application environment
	Dictionary Dictionary `mapstructure:"dictionary"`                                // text dictionary store
	Storage    Storage    `mapstructure:"storage"`                                   // storage backend selection
	DB         DB         `mapstructure:"database"`                                  // database configuration section
	Telegram   Telegram   `mapstructure:"telegram"`                                  // Telegram bot settings
	Reminder   Reminder   `mapstructure:"reminder"`                                  // practice reminder settings
	Random     Random     `mapstructure:"random"`                                    // question randomness
}

// Dictionary contains paths of the text dictionary.
type Dictionary struct {
	Path     string `mapstructure:"path" validate:"required"`      // file with the user's progress
	SeedPath string `mapstructure:"seed_path" validate:"required"` // bundled file copied when Path does not exist
}

// Storage selects where the dictionary is kept.
type Storage struct {
	Driver string `mapstructure:"driver" validate:"oneof=file postgres"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                                       // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections" validate:"min=1,max=100"` // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime" validate:"min=0"`      // maximum lifetime of a single connection
}

// Telegram contains bot settings.
type Telegram struct {
	Token       string `mapstructure:"-"`                              // Telegram API token loaded from environment
	PollTimeout int    `mapstructure:"poll_timeout" validate:"min=0"` // long polling timeout in seconds
	Debug       bool   `mapstructure:"debug"`
}

// Reminder configures practice reminders sent by the bot.
type Reminder struct {
	Schedule string `mapstructure:"schedule"` // cron spec, empty disables reminders
}

// Random configures the question generator.
type Random struct {
	Seed int64 `mapstructure:"seed"` // 0 means a time based seed
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// BotToken returns the Telegram API token if it is configured.
func (t Telegram) BotToken() (string, error) {
	if t.Token == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return t.Token, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Values from .env never override variables already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("dictionary.path", "words.txt")
	v.SetDefault("dictionary.seed_path", "assets/words.txt")
	v.SetDefault("storage.driver", DriverFile)
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("telegram.poll_timeout", 60)
	v.SetDefault("telegram.debug", false)
	v.SetDefault("reminder.schedule", "")
	v.SetDefault("random.seed", 0)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.Telegram.Token = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if err := validateStruct(cfg); err != nil {
		return nil, err
	}

	if cfg.Storage.Driver == DriverPostgres && cfg.DB.URL == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL is required for the postgres driver", ErrMissingEnvironmentVariables)
	}

	return &cfg, nil
}

var validate = validator.New()

func validateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return fmt.Errorf("validation failed: %w", err)
		}

		var errMsgs []string
		for _, err := range validationErrs {
			errMsgs = append(errMsgs, fmt.Sprintf(
				"Field: %s, Tag: %s, Param: %s", err.Namespace(), err.Tag(), err.Param(),
			))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}
