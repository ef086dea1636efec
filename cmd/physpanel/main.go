// Package main is the CLI entry point for physpanel.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/8bit2qubit/physpanel/internal/config"
	"github.com/8bit2qubit/physpanel/internal/domain"
	"github.com/8bit2qubit/physpanel/internal/infra"
	"github.com/8bit2qubit/physpanel/internal/usecase"
)

var (
	// Version info (set via ldflags)
	Version   = "1.0.0"
	Commit    = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps the two error kinds to distinct non-zero codes so callers
// can tell a missing component from a failed activation.
func exitCode(err error) int {
	var notFound *domain.ComponentNotFoundError
	if errors.As(err, &notFound) {
		return 2
	}
	return 1
}

var rootCmd = &cobra.Command{
	Use:   "physpanel",
	Short: "Physical panel and touch keyboard control for handheld Windows devices",
	Long: `physpanel reads and overrides the physical display panel size reported by
the graphics stack, and drives the touch keyboard into a known state
(launched and hidden) for use by a shell replacement.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get the current physical display size (in mm and inches)",
	Args:  cobra.NoArgs,
	RunE:  runGet,
}

var setCmd = &cobra.Command{
	Use:   "set <width-mm> <height-mm>",
	Short: "Set a new physical display size (in mm)",
	Long: `Sets a new physical display size override in millimeters.
Requires SYSTEM privileges.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var regCmd = &cobra.Command{
	Use:   "reg",
	Short: "Write the handheld device-form registry override",
	Long: `Writes the gaming-handheld device form value to the registry so the shell
offers the full-screen experience. Idempotent; requires elevation.`,
	Args: cobra.NoArgs,
	RunE: runReg,
}

var startKeyboardCmd = &cobra.Command{
	Use:   "startkeyboard",
	Short: "Launch and prepare the touch keyboard for use",
	Long: `Launches the touch keyboard service if it is not already running, waits for
the shell to be ready, and hides the keyboard again if it popped up during
startup. The exit code is zero whenever the keyboard ends in a usable state,
including when it was already running or stayed in the background.`,
	Args: cobra.NoArgs,
	RunE: runStartKeyboard,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run:   runVersion,
}

var jsonOutput bool

func init() {
	versionCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(regCmd)
	rootCmd.AddCommand(startKeyboardCmd)
	rootCmd.AddCommand(versionCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	store := infra.NewPanelStore()
	dims, err := store.Get()
	if err != nil {
		return fmt.Errorf("failed to get display size (an override may not be set): %w", err)
	}

	fmt.Printf("Current Size: Width = %d mm, Height = %d mm (Diagonal approx. %.2f inches)\n",
		dims.WidthMm, dims.HeightMm, dims.DiagonalInches())
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	dims, err := parseDimensions(args[0], args[1])
	if err != nil {
		return err
	}

	store := infra.NewPanelStore()
	if err := store.Set(dims); err != nil {
		return fmt.Errorf("failed to set display size: %w", err)
	}

	fmt.Println("Success: display size has been set.")
	return nil
}

// parseDimensions validates the two positive integer millimeter arguments.
func parseDimensions(widthArg, heightArg string) (domain.PanelDimensions, error) {
	width, err := strconv.ParseUint(widthArg, 10, 32)
	if err != nil || width == 0 {
		return domain.PanelDimensions{}, fmt.Errorf("width must be a positive integer (got %q)", widthArg)
	}
	height, err := strconv.ParseUint(heightArg, 10, 32)
	if err != nil || height == 0 {
		return domain.PanelDimensions{}, fmt.Errorf("height must be a positive integer (got %q)", heightArg)
	}
	return domain.PanelDimensions{WidthMm: uint32(width), HeightMm: uint32(height)}, nil
}

func runReg(cmd *cobra.Command, args []string) error {
	if err := infra.NewDeviceFormRegistry().Apply(); err != nil {
		return fmt.Errorf("failed to write device-form override: %w", err)
	}
	fmt.Println("Success: device-form override written.")
	return nil
}

func runStartKeyboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := createLogger(cfg.Logging)
	defer func() { _ = logger.Sync() }()

	oracle, err := infra.NewVisibilityOracle(cfg.Keyboard.VisibilityStrategy)
	if err != nil {
		return err
	}

	clock := infra.SystemClock{}
	processManager := infra.NewProcessManagerWithClock(clock, cfg.Keyboard.ProcessPollInterval)

	activator := usecase.NewActivator(
		usecase.ActivatorConfig{
			KeyboardProcess:    cfg.Keyboard.ProcessName,
			ShellProcess:       cfg.Keyboard.ShellProcessName,
			ShellReadyTimeout:  cfg.Keyboard.ShellReadyTimeout,
			SettleDelay:        cfg.Keyboard.SettleDelay,
			VisibilityTimeout:  cfg.Keyboard.VisibilityTimeout,
			VisibilityInterval: cfg.Keyboard.VisibilityInterval,
		},
		processManager,
		processManager,
		infra.NewKeyboardPathResolver(),
		infra.NewFileSystem(),
		infra.NewShellLauncher(),
		oracle,
		infra.NewComRuntime(),
		infra.NewTipService(cfg.Keyboard.ConnectTimeout, cfg.Keyboard.ConnectInterval, clock, logger),
		infra.NewDesktop(),
		clock,
		logger,
	)

	outcome, err := activator.Activate()
	if err != nil {
		return err
	}

	switch outcome {
	case domain.OutcomeAlreadyRunning:
		fmt.Println("Touch keyboard service is already running.")
	case domain.OutcomeHidden:
		fmt.Println("Success: touch keyboard started and hidden.")
	case domain.OutcomeLeftOpen:
		fmt.Println("Success: touch keyboard start command sent.")
	}
	return nil
}

// createLogger builds the zap logger. Debug mode switches to the development
// encoder; a configured log file is added as an extra sink on top of the
// console output.
func createLogger(cfg config.LoggingConfig) *zap.Logger {
	zapConfig := zap.NewProductionConfig()
	if cfg.Debug {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.EncoderConfig.TimeKey = "time"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.LogFile != "" {
		zapConfig.OutputPaths = append(zapConfig.OutputPaths, cfg.LogFile)
		zapConfig.ErrorOutputPaths = append(zapConfig.ErrorOutputPaths, cfg.LogFile)
	}

	logger, err := zapConfig.Build()
	if err != nil {
		// Fall back to a silent logger rather than failing activation over
		// a bad log sink.
		return zap.NewNop()
	}
	return logger
}

func runVersion(cmd *cobra.Command, args []string) {
	if jsonOutput {
		out, _ := json.Marshal(map[string]string{
			"version":    Version,
			"commit":     Commit,
			"build_time": BuildTime,
		})
		fmt.Println(string(out))
	} else {
		fmt.Printf("physpanel %s (commit: %s, built: %s)\n", Version, Commit, BuildTime)
	}
}
