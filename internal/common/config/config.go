// internal/common/config/config.go
package config

import "time"

// DefaultAPIBaseURL is used when neither config nor API_ENDPOINT provide one.
const DefaultAPIBaseURL = "https://api.ukpc-membership.com"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	API     APIConfig     `mapstructure:"api"`
	Stub    StubConfig    `mapstructure:"stub"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig points the submitter at the remote membership API.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	Timeout int    `mapstructure:"timeout" validate:"gte=0"` // milliseconds, 0 = none
}

// StubConfig drives cmd/membership-stub.
type StubConfig struct {
	Address string      `mapstructure:"address" validate:"required"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig is optional; an empty address selects the in-memory store.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json console"`
	Output string `mapstructure:"output"`
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
