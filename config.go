package sigslot

import (
	"sync"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/sigslot/core/config"
)

// Config holds environment-driven defaults for signals and receivers.
type Config struct {
	// DefaultPolicy is used by zero-value signals and receivers and by
	// options that pass PolicyDefault.
	DefaultPolicy string `env:"SIGSLOT_DEFAULT_POLICY" envDefault:"local"`

	// RecoverPanics makes signals built with NewFromConfig recover panicking slots.
	RecoverPanics bool `env:"SIGSLOT_RECOVER_PANICS" envDefault:"false"`
}

// DefaultConfig returns the built-in defaults: local locking, panics propagate.
func DefaultConfig() Config {
	return Config{
		DefaultPolicy: PolicyLocal.String(),
	}
}

// LoadConfig reads Config from the environment. On first use it also loads a
// .env file from the working directory, if present, into the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Policy parses DefaultPolicy. Empty and "default" resolve to PolicyLocal.
func (c Config) Policy() (Policy, error) {
	p, err := ParsePolicy(c.DefaultPolicy)
	if err != nil {
		return PolicyLocal, err
	}
	if p == PolicyDefault {
		return PolicyLocal, nil
	}
	return p, nil
}

var (
	defaultPolicyOnce sync.Once
	defaultPolicy     Policy
)

// DefaultPolicy returns the process default policy, read once from
// SIGSLOT_DEFAULT_POLICY. Unlike LoadConfig it never reads a .env file, so
// using a zero-value signal does not change the process environment. An
// invalid setting falls back to PolicyLocal.
func DefaultPolicy() Policy {
	defaultPolicyOnce.Do(func() { defaultPolicy = loadDefaultPolicy() })
	return defaultPolicy
}

func loadDefaultPolicy() Policy {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return PolicyLocal
	}
	p, err := cfg.Policy()
	if err != nil {
		return PolicyLocal
	}
	return p
}

// NewFromConfig creates a signal configured from cfg. Options are applied
// after the config, so they take precedence.
func NewFromConfig[A any](cfg Config, opts ...Option) (*Signal[A], error) {
	p, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	base := []Option{WithPolicy(p)}
	if cfg.RecoverPanics {
		base = append(base, WithRecover())
	}
	return New[A](append(base, opts...)...), nil
}
