package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/muurk/wordhunt/internal/solverapi"
)

// CurrentVersion is the only settings file version this build understands.
const CurrentVersion = 1

// Registry represents the entire user settings file.
type Registry struct {
	Version     int         `yaml:"version"`
	Solver      Solver      `yaml:"solver"`
	Preferences Preferences `yaml:"preferences"`
	Web         Web         `yaml:"web"`
}

// Solver controls how requests reach the remote solver API.
type Solver struct {
	Endpoint       string `yaml:"endpoint" env:"WORDHUNT_ENDPOINT"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"WORDHUNT_TIMEOUT"`
	Retries        int    `yaml:"retries" env:"WORDHUNT_RETRIES"`
}

// Preferences are the starting values for the solver screen.
type Preferences struct {
	SortByLength bool   `yaml:"sort_by_length"`
	InputMode    string `yaml:"input_mode"` // "text" or "grid"
}

// Web configures the browser front end started by "wordhunt serve".
type Web struct {
	Addr      string `yaml:"addr" env:"WORDHUNT_WEB_ADDR"`
	Advertise bool   `yaml:"advertise"`
}

// NewRegistry creates a registry holding the defaults.
func NewRegistry() *Registry {
	return &Registry{
		Version: CurrentVersion,
		Solver: Solver{
			Endpoint:       solverapi.DefaultEndpoint,
			TimeoutSeconds: int(solverapi.DefaultTimeout / time.Second),
			Retries:        solverapi.DefaultMaxRetries,
		},
		Preferences: Preferences{
			SortByLength: true,
			InputMode:    "text",
		},
		Web: Web{
			Addr: ":8080",
		},
	}
}

// Timeout returns the solver timeout as a duration
func (s Solver) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Validate checks values that would otherwise fail later at request time.
func (r *Registry) Validate() error {
	if r.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", r.Version, CurrentVersion)
	}

	u, err := url.Parse(r.Solver.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid solver endpoint %q: %w", r.Solver.Endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid solver endpoint %q: must be an http or https URL", r.Solver.Endpoint)
	}

	if r.Solver.TimeoutSeconds <= 0 {
		return fmt.Errorf("solver timeout must be positive, got %d", r.Solver.TimeoutSeconds)
	}
	if r.Solver.Retries < 0 {
		return fmt.Errorf("solver retries must not be negative, got %d", r.Solver.Retries)
	}

	switch r.Preferences.InputMode {
	case "", "text", "grid":
	default:
		return fmt.Errorf("unknown input mode %q (expected text or grid)", r.Preferences.InputMode)
	}

	if r.Web.Addr == "" {
		return fmt.Errorf("web address must not be empty")
	}
	return nil
}
