package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Server    ServerConfig    `mapstructure:"server"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Report    ReportConfig    `mapstructure:"report"`
	Backup    BackupConfig    `mapstructure:"backup"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host" validate:"required"`
	Port            int               `mapstructure:"port" validate:"gte=1,lte=65535"`
	Database        string            `mapstructure:"database" validate:"required"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"gte=1,lte=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SchedulerConfig holds the study policy. An empty Timezone means the
// local time zone of the process.
type SchedulerConfig struct {
	DefaultSecondsPerCard float64 `mapstructure:"default_seconds_per_card" validate:"gt=0"`
	DailyNewCardLimit     int     `mapstructure:"daily_new_card_limit" validate:"gte=0"`
	MasteryPercent        int     `mapstructure:"mastery_percent" validate:"gte=1,lte=100"`
	ActivityWindowDays    int     `mapstructure:"activity_window_days" validate:"gte=1"`
	Timezone              string  `mapstructure:"timezone" validate:"omitempty,timezone"`
}

// Location returns the time zone used to decide calendar days.
func (c SchedulerConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("time.LoadLocation(%s) > %w", c.Timezone, err)
	}
	return loc, nil
}

type ReportConfig struct {
	Directory string `mapstructure:"directory"`
	// Template replaces the embedded markdown template when set.
	Template string `mapstructure:"template" validate:"omitempty,file"`
}

type BackupConfig struct {
	Directory string `mapstructure:"directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/kioku")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "kioku")
	v.SetDefault("database.username", "user")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("scheduler.default_seconds_per_card", 30)
	v.SetDefault("scheduler.daily_new_card_limit", 10)
	v.SetDefault("scheduler.mastery_percent", 80)
	v.SetDefault("scheduler.activity_window_days", 30)
	v.SetDefault("scheduler.timezone", "")
	v.SetDefault("report.directory", filepath.Join("outputs", "reports"))
	v.SetDefault("report.template", "")
	v.SetDefault("backup.directory", "backup")

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("scheduler.timezone", "KIOKU_TIMEZONE"); err != nil {
		return nil, fmt.Errorf("failed to bind KIOKU_TIMEZONE environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
