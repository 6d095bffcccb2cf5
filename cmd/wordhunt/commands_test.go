package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/muurk/wordhunt/internal/logging"
)

// resetFlags restores every flag in the command tree to its default so
// tests do not see each other's values.
func resetFlags(t *testing.T) {
	t.Helper()
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func solverStub(t *testing.T, body string, gotQuery *string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.RawQuery
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestSolveJSON(t *testing.T) {
	var query string
	ts := solverStub(t, `{"data":["FAKE","JOKE"]}`, &query)

	out, err := execute(t, "solve", "abcdefghijklmnopqr", "--endpoint", ts.URL, "--format", "json", "--sort=false")
	if err != nil {
		t.Fatalf("solve error = %v", err)
	}

	var got solveOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Board != "abcdefghijklmnop" {
		t.Errorf("Board = %q, want the first 16 characters", got.Board)
	}
	if got.Status != "success" || len(got.Words) != 2 {
		t.Errorf("output = %+v", got)
	}
	if query != "board=abcdefghijklmnop&sort=false" {
		t.Errorf("query = %q", query)
	}
}

func TestSolveTextRejected(t *testing.T) {
	ts := solverStub(t, `{"data":["Invalid board string"]}`, nil)

	out, err := execute(t, "solve", "XYZ", "--endpoint", ts.URL)
	if !errors.Is(err, errInvalidBoard) {
		t.Fatalf("error = %v, want errInvalidBoard", err)
	}
	for _, want := range []string{
		"Invalid Board submitted. Please try again.",
		"XYZ.",
		"3/16",
		"Enter all 16 letters; this board has 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSolveTextSuccess(t *testing.T) {
	ts := solverStub(t, `{"data":["QUIET"]}`, nil)

	out, err := execute(t, "solve", "ABCDEFGHIJKLMNOP", "--endpoint", ts.URL)
	if err != nil {
		t.Fatalf("solve error = %v", err)
	}
	for _, want := range []string{"1 word found", "QUIET"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSolveBadFormat(t *testing.T) {
	if _, err := execute(t, "solve", "ABC", "--format", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()

	resetFlags(t)
	t.Setenv("XDG_CONFIG_HOME", dir)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "init"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "wordhunt", "config.yaml")); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}

	resetFlags(t)
	rootCmd.SetArgs([]string{"config", "init"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("second init without --force should fail")
	}

	resetFlags(t)
	out.Reset()
	t.Setenv("WORDHUNT_RETRIES", "4")
	rootCmd.SetArgs([]string{"config", "show", "--endpoint", "http://localhost:1/solve"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"endpoint: http://localhost:1/solve", "retries: 4"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("config show missing %q:\n%s", want, out.String())
		}
	}
	resetFlags(t)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "wordhunt ") {
		t.Errorf("version output = %q", out)
	}
}

func TestSetupLoggingCreatesLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")
	t.Setenv("XDG_CONFIG_HOME", dir)
	resetFlags(t)
	t.Cleanup(func() {
		resetFlags(t)
		logging.SetLogger(zap.NewNop())
	})
	logLevel = "debug"

	if err := setupLogging(rootCmd, nil); err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	logging.Debug("terminal UI started")
	logging.Sync()

	if _, err := os.Stat(filepath.Join(dir, "wordhunt", logFile)); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestSetupLoggingUnwritableDir(t *testing.T) {
	// A file where the settings directory should be makes MkdirAll fail.
	parent := t.TempDir()
	blocker := filepath.Join(parent, "wordhunt")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", parent)
	resetFlags(t)
	t.Cleanup(func() {
		resetFlags(t)
		logging.SetLogger(zap.NewNop())
	})
	logLevel = "debug"

	if err := setupLogging(rootCmd, nil); err != nil {
		t.Fatalf("setupLogging() error = %v, want the terminal UI to start without logs", err)
	}
	if logging.GetLogger().Core().Enabled(zap.ErrorLevel) {
		t.Error("expected a silent logger when the log file cannot be opened")
	}
}

func TestSetupLoggingSubcommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "fresh"))
	t.Setenv(logging.LogLevelEnvVar, "")
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })

	if err := setupLogging(versionCmd, nil); err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "wordhunt")); !os.IsNotExist(err) {
		t.Errorf("subcommands should not create the settings directory, stat err = %v", err)
	}
}
