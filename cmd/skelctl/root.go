package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/skelkit/internal/logger"
	"github.com/joshuapare/skelkit/internal/settings"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	jsonOut      bool
	logEnabled   bool
	settingsFile string

	// cfg holds the settings loaded before each command runs.
	cfg      = settings.Default()
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "skelctl",
	Short: "Inspect and adjust the root bone of Spine .skel files",
	Long: `skelctl reads and patches the root bone transform stored in binary
Spine skeleton (.skel) files. Every patched file is backed up first and
rewritten atomically, so an interrupted run never leaves a half-written file.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logEnabled, "log", false, "Write a JSON log under the XDG state dir")
	rootCmd.PersistentFlags().
		StringVar(&settingsFile, "settings", "", "Settings file (default: user config dir)")
}

// setup loads saved settings and starts the logger.
func setup(cmd *cobra.Command, args []string) error {
	if settingsFile == "" {
		settingsFile = settings.DefaultPath()
	}
	var loadErr error
	cfg, loadErr = settings.Load(settingsFile)

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	closeFn, err := logger.Init(logger.Options{Enabled: logEnabled, Level: level})
	if err != nil {
		return fmt.Errorf("failed to start logger: %w", err)
	}
	closeLog = closeFn

	if loadErr != nil {
		printError("%v (using defaults)\n", loadErr)
		logger.Warn("settings load failed", "path", settingsFile, "error", loadErr)
	}
	logger.Debug("command start", "cmd", cmd.Name(), "args", args, "settings", settingsFile)
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
