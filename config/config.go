package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Twilio   TwilioConfig   `mapstructure:"twilio"`
	Campaign CampaignConfig `mapstructure:"campaign"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Events   EventsConfig   `mapstructure:"events"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig configures validation of the dashboard bearer tokens.
// The token subject is the restaurant (tenant) id.
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// TwilioConfig configures the WhatsApp messaging provider.
type TwilioConfig struct {
	AccountSID         string        `mapstructure:"account_sid"`
	AuthToken          string        `mapstructure:"auth_token"`
	Timeout            time.Duration `mapstructure:"timeout"`
	ValidateSignatures bool          `mapstructure:"validate_signatures"`
	// WebhookBaseURL is the public scheme+host Twilio posts callbacks to,
	// needed to rebuild the signed URL behind a proxy.
	WebhookBaseURL string `mapstructure:"webhook_base_url"`
}

type CampaignConfig struct {
	CancelConcurrency int           `mapstructure:"cancel_concurrency"`
	CancelBatchSize   int           `mapstructure:"cancel_batch_size"`
	CancelLockTTL     time.Duration `mapstructure:"cancel_lock_ttl"`
}

type WebhookConfig struct {
	DedupTTL time.Duration `mapstructure:"dedup_ttl"`
}

// EventsConfig configures the RabbitMQ event publisher. Empty URL disables it.
type EventsConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

// Enabled reports whether campaign events should be published.
func (e EventsConfig) Enabled() bool {
	return e.URL != ""
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: RBD_ (Restaurant Bot Dashboard).
// Nested keys use underscore: RBD_DATABASE_HOST, RBD_TWILIO_AUTH_TOKEN, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "restaurant_bot")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "restaurant-bot-dashboard")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("twilio.account_sid", "")
	v.SetDefault("twilio.auth_token", "")
	v.SetDefault("twilio.timeout", "10s")
	v.SetDefault("twilio.validate_signatures", false)
	v.SetDefault("twilio.webhook_base_url", "")
	v.SetDefault("campaign.cancel_concurrency", 4)
	v.SetDefault("campaign.cancel_batch_size", 500)
	v.SetDefault("campaign.cancel_lock_ttl", "5m")
	v.SetDefault("webhook.dedup_ttl", "24h")
	v.SetDefault("events.url", "")
	v.SetDefault("events.exchange", "restaurant.campaigns")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: RBD_DATABASE_HOST -> database.host
	v.SetEnvPrefix("RBD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Campaign.CancelConcurrency < 1 {
		cfg.Campaign.CancelConcurrency = 1
	}
	if cfg.Campaign.CancelBatchSize < 1 {
		return nil, fmt.Errorf("campaign.cancel_batch_size must be positive, got %d", cfg.Campaign.CancelBatchSize)
	}

	return &cfg, nil
}
