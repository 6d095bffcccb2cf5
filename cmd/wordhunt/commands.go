package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/wordhunt/internal/board"
	"github.com/muurk/wordhunt/internal/config"
	"github.com/muurk/wordhunt/internal/controller"
	"github.com/muurk/wordhunt/internal/discovery"
	"github.com/muurk/wordhunt/internal/solverapi"
	"github.com/muurk/wordhunt/internal/tui"
	"github.com/muurk/wordhunt/internal/ui"
	"github.com/muurk/wordhunt/internal/web"
)

// Command flags
var (
	sortByLength bool
	outputFormat string
	listenAddr   string
	advertise    bool
	scanTimeout  int
	forceInit    bool
)

// errInvalidBoard is returned by solve when the solver rejects the board
var errInvalidBoard = errors.New("invalid board")

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal() {
		return fmt.Errorf("the interactive solver needs a terminal; use 'wordhunt solve <board>' instead")
	}

	registry, err := loadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	ctrl := controller.New(registry.Preferences.SortByLength)
	ctrl.SetInputMode(controller.ParseInputMode(registry.Preferences.InputMode))

	model := tui.NewModel(cmd.Context(), ctrl, newClient(registry))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}
	return nil
}

// solveCmd solves one board and exits
var solveCmd = &cobra.Command{
	Use:   "solve <board>",
	Short: "Solve a single board",
	Long: `Send one board to the solver and print the words found on it.

The board is 16 letters read left to right, top to bottom. Anything past
the 16th letter is ignored.`,
	Example: `  # Solve a board, longest words first
  wordhunt solve OATRIHPSHTNRENEI

  # Keep the solver's board order
  wordhunt solve OATRIHPSHTNRENEI --sort=false

  # JSON output for scripting
  wordhunt solve OATRIHPSHTNRENEI --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&sortByLength, "sort", true, "Sort results by length")
	solveCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")
}

// solveOutput is the JSON form of a solve
type solveOutput struct {
	Board        string   `json:"board"`
	SortByLength bool     `json:"sort_by_length"`
	Status       string   `json:"status"`
	Words        []string `json:"words"`
	Error        string   `json:"error,omitempty"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("unknown format %q (expected text or json)", outputFormat)
	}

	registry, err := loadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	sort := registry.Preferences.SortByLength
	if cmd.Flags().Changed("sort") {
		sort = sortByLength
	}

	ctrl := controller.New(sort)
	ctrl.UpdateInput(args[0])
	req := ctrl.Submit(cmd.Context(), newClient(registry))

	if outputFormat == "json" {
		out := solveOutput{
			Board:        req.Board,
			SortByLength: req.SortByLength,
			Status:       ctrl.Status().String(),
			Words:        ctrl.Results(),
		}
		if ctrl.Err() != nil {
			out.Error = solverapi.ShortMessage(ctrl.Err())
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return solveError(ctrl)
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Solve", "wordhunt solve",
		ui.Field{Key: "Board", Value: req.Board},
		ui.Field{Key: "Sort", Value: fmt.Sprintf("%t", req.SortByLength)},
		ui.Field{Key: "Endpoint", Value: registry.Solver.Endpoint},
	)

	switch ctrl.Status() {
	case controller.StatusSuccess:
		p.PrintWords(ctrl.PrevBoard(), ctrl.Results())
	case controller.StatusRejected:
		p.PrintResult(rejectedResult(req.Board, ctrl.Err()))
	default:
		p.PrintResult(ui.NewFailureResult("Solve failed", ctrl.Err(),
			solverapi.TroubleshootingHint(ctrl.Err())))
	}
	return solveError(ctrl)
}

// rejectedResult shows the board the solver refused as a grid, so missing
// or extra cells are easy to spot.
func rejectedResult(letters string, err error) *ui.Result {
	b := board.Board(letters)
	r := ui.NewWarningResult("Invalid board",
		ui.Field{Key: "Board", Value: letters},
		ui.Field{Key: "Letters", Value: fmt.Sprintf("%d/%d", b.Len(), board.Cells)},
	)
	r.SetBody(solverapi.ShortMessage(err) + "\n\n" + strings.Join(b.Rows(), "\n"))
	if !b.Complete() {
		r.Troubleshooting = []string{
			fmt.Sprintf("Enter all %d letters; this board has %d", board.Cells, b.Len()),
		}
	}
	return r
}

// solveError maps a finished controller to the command's exit error
func solveError(ctrl *controller.Controller) error {
	switch ctrl.Status() {
	case controller.StatusSuccess:
		return nil
	case controller.StatusRejected:
		return errInvalidBoard
	default:
		return fmt.Errorf("solve failed: %s", solverapi.ShortMessage(ctrl.Err()))
	}
}

// serveCmd runs the browser front end
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver in a browser",
	Long: `Start the web front end. Each open page gets its own session, so
several people can use one server at once.

With --advertise the server announces itself over mDNS so 'wordhunt scan'
on another machine can find it.`,
	Example: `  # Serve on the configured address (default :8080)
  wordhunt serve

  # Serve on a specific address and announce it on the LAN
  wordhunt serve --addr :9000 --advertise --log-level info`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (default from settings, :8080)")
	serveCmd.Flags().BoolVar(&advertise, "advertise", false, "Announce the server over mDNS")
}

func runServe(cmd *cobra.Command, args []string) error {
	registry, err := loadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	cfg := web.Config{
		Addr:         registry.Web.Addr,
		Advertise:    registry.Web.Advertise,
		SortByLength: registry.Preferences.SortByLength,
		Endpoint:     registry.Solver.Endpoint,
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = listenAddr
	}
	if cmd.Flags().Changed("advertise") {
		cfg.Advertise = advertise
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Serving Word Hunt Solver on %s (Ctrl+C to stop)\n", cfg.Addr)
	return web.New(cfg, newClient(registry)).Start(cmd.Context())
}

// scanCmd finds advertised servers on the LAN
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find wordhunt servers on the local network",
	Long: `Scan for wordhunt web servers started with 'wordhunt serve --advertise'
using mDNS/DNS-SD discovery.`,
	Example: `  # Scan for 5 seconds (default)
  wordhunt scan

  # Longer scan for slow networks
  wordhunt scan --timeout 15`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", int(discovery.DefaultScanTimeout/time.Second), "Scan timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Scan", "wordhunt scan",
		ui.Field{Key: "Service", Value: discovery.ServiceType},
		ui.Field{Key: "Timeout", Value: fmt.Sprintf("%ds", scanTimeout)},
	)

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(scanTimeout) * time.Second

	instances, err := scanner.Scan(cmd.Context())
	if err != nil {
		p.PrintResult(ui.NewFailureResult("Scan failed", err,
			"Check that multicast traffic is allowed on this network"))
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(instances) == 0 {
		r := ui.NewWarningResult("No servers found")
		r.Troubleshooting = []string{
			"Start a server with 'wordhunt serve --advertise'",
			"Make sure both machines are on the same network",
			"Try increasing --timeout for slower networks",
		}
		p.PrintResult(r)
		return nil
	}

	r := ui.NewSuccessResult(fmt.Sprintf("Found %d server(s)", len(instances)))
	for _, inst := range instances {
		value := inst.URL()
		if inst.Version != "" {
			value += " (" + inst.Version + ")"
		}
		r.AddDetail(inst.Name, value)
	}
	p.PrintResult(r)
	return nil
}

// configCmd inspects and creates the settings file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Long: `Print the settings after applying the file, WORDHUNT_* environment
variables, and command-line flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadSettings(cmd.Flags())
		if err != nil {
			return err
		}
		data, err := registry.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		if err := config.CreateDefaultConfig(path, forceInit); err != nil {
			if errors.Is(err, config.ErrConfigExists) {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing settings file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
