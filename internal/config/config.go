package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ResultPolicy controls what the result view does when no in-memory
// result is available (a refreshed or stale view).
type ResultPolicy string

const (
	// ResultPolicyDiscard redirects away, forcing a re-take.
	ResultPolicyDiscard ResultPolicy = "discard"
	// ResultPolicyRestore refetches the last stored result instead.
	ResultPolicyRestore ResultPolicy = "restore"
)

// Config holds all client configuration, loaded from the environment.
type Config struct {
	// APIURL is the base URL of the Club Compass backend.
	APIURL string `env:"CLUBCOMPASS_API_URL" envDefault:"http://localhost:8000"`

	// Token is an optional session credential, overriding the stored one.
	Token string `env:"CLUBCOMPASS_TOKEN"`

	// Timeout bounds a single API request, including retries.
	Timeout time.Duration `env:"CLUBCOMPASS_API_TIMEOUT" envDefault:"15s"`

	// RetryMax is the number of retries for transient API failures.
	RetryMax int `env:"CLUBCOMPASS_API_RETRIES" envDefault:"3"`

	// ResultPolicy selects the stale-result behavior of the result view.
	ResultPolicy ResultPolicy `env:"CLUBCOMPASS_RESULT_POLICY" envDefault:"restore"`

	// DBPath overrides the local cache database location.
	DBPath string `env:"CLUBCOMPASS_DB"`

	// LogFile enables debug logging to the given file. The TUI owns
	// stdout, so logs never go there.
	LogFile string `env:"CLUBCOMPASS_LOG"`
}

// FromEnv loads configuration from environment variables, falling back
// to defaults for unset values.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values that env tags cannot express.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("CLUBCOMPASS_API_URL must not be empty")
	}
	switch c.ResultPolicy {
	case ResultPolicyDiscard, ResultPolicyRestore:
	default:
		return fmt.Errorf("unknown result policy: %q", c.ResultPolicy)
	}
	return nil
}
