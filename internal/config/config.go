package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Visitor   VisitorConfig   `yaml:"visitor"`
	Quota     QuotaConfig     `yaml:"quota"`
	Check     CheckConfig     `yaml:"check"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxBodyBytes caps request bodies; 10,000 CJK characters need ~30 KB.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"65536"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// VisitorConfig holds the anonymous visitor cookie settings.
type VisitorConfig struct {
	TokenSecret       string        `yaml:"token_secret"        env:"VISITOR_TOKEN_SECRET"        env-required:"true"`
	TokenIssuer       string        `yaml:"token_issuer"        env:"VISITOR_TOKEN_ISSUER"        env-default:"punctcheck"`
	CookieName        string        `yaml:"cookie_name"         env:"VISITOR_COOKIE_NAME"         env-default:"uid"`
	CookieMaxAge      time.Duration `yaml:"cookie_max_age"      env:"VISITOR_COOKIE_MAX_AGE"      env-default:"8760h"`
	CookieSecure      bool          `yaml:"cookie_secure"       env:"VISITOR_COOKIE_SECURE"       env-default:"false"`
	TrustProxyHeaders bool          `yaml:"trust_proxy_headers" env:"VISITOR_TRUST_PROXY_HEADERS" env-default:"false"`
}

// QuotaConfig holds the free-tier daily quota.
type QuotaConfig struct {
	DailyLimit int    `yaml:"daily_limit" env:"QUOTA_DAILY_LIMIT" env-default:"20"`
	Timezone   string `yaml:"timezone"    env:"QUOTA_TIMEZONE"    env-default:"UTC"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// CheckConfig holds punctuation check limits.
type CheckConfig struct {
	MaxTextLength int `yaml:"max_text_length" env:"CHECK_MAX_TEXT_LENGTH" env-default:"10000"`
}

// RateLimitConfig holds per-IP request throttling for /api/ routes.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"              env-default:"60"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
