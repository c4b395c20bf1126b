package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// DBDSN vacío => repos in-memory.
	DBDSN string `mapstructure:"DB_DSN"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	AppName   string `mapstructure:"APP_NAME"`

	DrugInfoBaseURL string        `mapstructure:"DRUGINFO_BASE_URL"`
	DrugInfoAPIKey  string        `mapstructure:"DRUGINFO_API_KEY"`
	DrugInfoTimeout time.Duration `mapstructure:"DRUGINFO_TIMEOUT"`

	ReadTimeout  time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"WRITE_TIMEOUT"`
}

var keys = []string{
	"PORT", "ENV", "DB_DSN",
	"LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"DRUGINFO_BASE_URL", "DRUGINFO_API_KEY", "DRUGINFO_TIMEOUT",
	"READ_TIMEOUT", "WRITE_TIMEOUT",
}

// Load lee .env (si existe) y luego el entorno. El entorno gana sobre .env.
func Load() (*Config, error) {
	// godotenv no pisa variables ya definidas
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "medtracker")
	v.SetDefault("DRUGINFO_BASE_URL", "https://api.fda.gov")
	v.SetDefault("DRUGINFO_API_KEY", "")
	v.SetDefault("DRUGINFO_TIMEOUT", "10s")
	v.SetDefault("READ_TIMEOUT", "5s")
	v.SetDefault("WRITE_TIMEOUT", "10s")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Port = strings.TrimSpace(c.Port)
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.DBDSN = strings.TrimSpace(c.DBDSN)
	c.DrugInfoBaseURL = strings.TrimSpace(c.DrugInfoBaseURL)
	c.DrugInfoAPIKey = strings.TrimSpace(c.DrugInfoAPIKey)
}

func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	if c.DrugInfoTimeout <= 0 {
		return errors.New("DRUGINFO_TIMEOUT must be positive")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return errors.New("READ_TIMEOUT and WRITE_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// UsesPostgres indica si hay DSN configurado.
func (c *Config) UsesPostgres() bool {
	return c.DBDSN != ""
}
