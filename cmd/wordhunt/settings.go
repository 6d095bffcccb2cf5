package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/muurk/wordhunt/internal/config"
	"github.com/muurk/wordhunt/internal/logging"
	"github.com/muurk/wordhunt/internal/solverapi"
)

// logFile is the terminal UI's log, kept in the settings directory
const logFile = "wordhunt.log"

// Flags shared by every command
var (
	endpoint       string
	timeoutSeconds int
	retries        int
	logLevel       string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", solverapi.DefaultEndpoint, "Solver API endpoint")
	rootCmd.PersistentFlags().IntVar(&timeoutSeconds, "solver-timeout", int(solverapi.DefaultTimeout/time.Second), "Solver request timeout in seconds")
	rootCmd.PersistentFlags().IntVar(&retries, "retries", solverapi.DefaultMaxRetries, "Retries for transient solver failures")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
}

// setupLogging sends logs to stderr, except for the terminal UI, which
// would be drawn over; it logs to a file next to the settings instead.
// When that file cannot be opened the terminal UI runs without logs.
func setupLogging(cmd *cobra.Command, args []string) error {
	if cmd.HasParent() || (logLevel == "" && os.Getenv(logging.LogLevelEnvVar) == "") {
		return logging.Initialize(logLevel)
	}

	dir, err := config.GetConfigDir()
	if err == nil {
		err = os.MkdirAll(dir, 0700)
	}
	if err == nil {
		err = logging.InitializeWithOutput(logLevel, filepath.Join(dir, logFile))
	}
	if err != nil {
		logging.SetLogger(zap.NewNop())
	}
	return nil
}

// loadSettings resolves settings with precedence flags > env > file > defaults.
func loadSettings(flags *pflag.FlagSet) (*config.Registry, error) {
	registry, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := applyFlags(registry, flags); err != nil {
		return nil, err
	}
	return registry, nil
}

// applyFlags copies explicitly set flags over the loaded settings
func applyFlags(registry *config.Registry, flags *pflag.FlagSet) error {
	if flags.Changed("endpoint") {
		registry.Solver.Endpoint = endpoint
	}
	if flags.Changed("solver-timeout") {
		registry.Solver.TimeoutSeconds = timeoutSeconds
	}
	if flags.Changed("retries") {
		registry.Solver.Retries = retries
	}
	if err := registry.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// newClient builds the solver client described by the settings
func newClient(registry *config.Registry) *solverapi.Client {
	client := solverapi.NewClient(registry.Solver.Endpoint)
	client.SetTimeout(registry.Solver.Timeout())
	client.SetRetry(registry.Solver.Retries, solverapi.DefaultRetryDelay)
	return client
}
