// internal/membership/submit-application/config.go
package submitapplication

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"membership-portal/internal/common/config"
)

// ApplyPath is appended to the configured base endpoint.
const ApplyPath = "/membership/apply"

type Config struct {
	BaseURL string
	Timeout time.Duration // 0 = bounded only by the caller's context
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL: config.DefaultAPIBaseURL,
		Timeout: 0,
	}
}

// ConfigFrom maps the api section of the application config.
func ConfigFrom(api config.APIConfig) *Config {
	cfg := DefaultConfig()
	if api.BaseURL != "" {
		cfg.BaseURL = api.BaseURL
	}
	cfg.Timeout = config.GetDuration(api.Timeout)
	return cfg
}

// Endpoint is the full URL applications are posted to.
func (c *Config) Endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + ApplyPath
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base url %q must be absolute", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}
