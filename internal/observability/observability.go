package observability

import (
	"errors"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// Config controls the optional New Relic agent. Disabled by default so the
// service runs with no environment at all.
type Config struct {
	Enabled     bool   `koanf:"enabled"`
	LicenseKey  string `koanf:"licensekey"`
	ServiceName string `koanf:"-"`
	Environment string `koanf:"-"`
}

// DefaultConfig returns a disabled observability config.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks the config is usable. ServiceName and Environment are
// filled by the config loader before this is called.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("observability config is nil")
	}
	if c.Enabled && c.LicenseKey == "" {
		return errors.New("observability enabled but no license key set")
	}
	if c.Enabled && c.ServiceName == "" {
		return errors.New("observability enabled but no service name set")
	}
	return nil
}

// NewApplication builds the New Relic application, or returns nil when the
// agent is disabled.
func NewApplication(cfg *Config) (*newrelic.Application, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}
	return newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		func(c *newrelic.Config) {
			if cfg.Environment != "" {
				c.Labels = map[string]string{"environment": cfg.Environment}
			}
		},
	)
}
