package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // quota timezones must resolve without system zoneinfo
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Visitor.validate(); err != nil {
		return fmt.Errorf("visitor: %w", err)
	}

	if err := c.Quota.validate(); err != nil {
		return fmt.Errorf("quota: %w", err)
	}

	if c.Check.MaxTextLength <= 0 {
		return fmt.Errorf("check.max_text_length must be > 0 (got %d)", c.Check.MaxTextLength)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (v *VisitorConfig) validate() error {
	if len(v.TokenSecret) < 32 {
		return fmt.Errorf("token_secret must be at least 32 characters (got %d)", len(v.TokenSecret))
	}
	if strings.TrimSpace(v.CookieName) == "" {
		return fmt.Errorf("cookie_name must not be empty")
	}
	if v.CookieMaxAge <= 0 {
		return fmt.Errorf("cookie_max_age must be > 0 (got %s)", v.CookieMaxAge)
	}
	return nil
}

func (q *QuotaConfig) validate() error {
	if q.DailyLimit <= 0 {
		return fmt.Errorf("daily_limit must be > 0 (got %d)", q.DailyLimit)
	}

	loc, err := time.LoadLocation(q.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", q.Timezone, err)
	}
	q.Location = loc

	return nil
}
