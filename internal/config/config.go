package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Locale   string         `mapstructure:"locale"`
	API      APIConfig      `mapstructure:"api"`
	Console  ConsoleConfig  `mapstructure:"console"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	AMQP     AMQPConfig     `mapstructure:"amqp"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Campaign CampaignConfig `mapstructure:"campaign"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ConsoleConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// TrustProxy honours X-Forwarded-For and X-Real-IP. Enable only behind
	// a reverse proxy that overwrites them.
	TrustProxy bool `mapstructure:"trust_proxy"`
}

type StorageConfig struct {
	Driver        string `mapstructure:"driver"`
	Path          string `mapstructure:"path"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	PostgresDSN   string `mapstructure:"postgres_dsn"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AMQPConfig enables activity publishing when URL is set.
type AMQPConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

type CampaignConfig struct {
	SenderName       string `mapstructure:"sender_name"`
	SenderEmail      string `mapstructure:"sender_email"`
	ValuePitch       string `mapstructure:"value_pitch"`
	SendDelaySeconds int    `mapstructure:"send_delay_seconds"`
	MaxItems         int    `mapstructure:"max_items"`
}

const (
	DriverBolt     = "bolt"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL: %q", c.API.BaseURL)
	}

	switch c.Storage.Driver {
	case DriverBolt:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the bolt driver")
		}
	case DriverRedis:
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("storage.redis_addr is required for the redis driver")
		}
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("storage.postgres_dsn is required for the postgres driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}

	if c.Campaign.SendDelaySeconds < 0 {
		return fmt.Errorf("campaign.send_delay_seconds must not be negative")
	}
	return nil
}
