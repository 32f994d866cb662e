// Package config loads the service configuration from YAML with environment overrides.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultBulkDeleteMode     = "best_effort"
	defaultAccessTokenTTL     = 12 * time.Hour
	defaultMaxBulkDelete      = 100
	defaultVIPOrderThreshold  = 3
	defaultVIPSpendThreshold  = 300
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// Origins allowed to call the admin API from the browser panel
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	// Admin configuration for back-office behaviour
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// PubSub configuration for change event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// SecretKeyConfig holds signing secrets.
type SecretKeyConfig struct {
	Access string `json:"access" yaml:"access"`
}

// AdminConfig defines back-office behaviour that operators may tune per deployment.
type AdminConfig struct {
	// Lifetime of issued admin access tokens
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`

	// Default mode for bulk customer deletion: "all_or_nothing" or "best_effort"
	BulkDeleteMode string `json:"bulkDeleteMode" yaml:"bulkDeleteMode"`

	// Maximum number of customers accepted by one bulk delete request
	MaxBulkDelete int `json:"maxBulkDelete" yaml:"maxBulkDelete"`

	// A customer with at least this many orders is VIP
	VIPOrderThreshold int `json:"vipOrderThreshold" yaml:"vipOrderThreshold"`

	// A customer who spent at least this much is VIP
	VIPSpendThreshold float64 `json:"vipSpendThreshold" yaml:"vipSpendThreshold"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig selects where change events go. An empty Provider drops them.
type PubSubConfig struct {
	Provider string `json:"provider" yaml:"provider"` // "local" or "google"

	// google
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// local: push endpoint of a development subscriber
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// New loads config.yaml from the working directory or a nearby config directory.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Admin = applyAdminDefaults(cfg.Admin)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.LookupEnv)
	}

	return cfg, nil
}

// applyAdminDefaults fills the zero values of the admin section.
func applyAdminDefaults(admin *AdminConfig) *AdminConfig {
	if admin == nil {
		admin = &AdminConfig{}
	}
	if admin.AccessTokenTTL <= 0 {
		admin.AccessTokenTTL = defaultAccessTokenTTL
	}
	if strings.TrimSpace(admin.BulkDeleteMode) == "" {
		admin.BulkDeleteMode = defaultBulkDeleteMode
	}
	if admin.MaxBulkDelete <= 0 {
		admin.MaxBulkDelete = defaultMaxBulkDelete
	}
	if admin.VIPOrderThreshold <= 0 {
		admin.VIPOrderThreshold = defaultVIPOrderThreshold
	}
	if admin.VIPSpendThreshold <= 0 {
		admin.VIPSpendThreshold = defaultVIPSpendThreshold
	}

	return admin
}
