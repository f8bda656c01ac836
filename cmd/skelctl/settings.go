package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSettingsCmd())
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the saved patch settings",
		Long: `The settings command prints the settings file location and the values
patch falls back to when a flag is not given.

Example:
  skelctl settings
  skelctl settings --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettings()
		},
	}
	return cmd
}

func runSettings() error {
	if jsonOut {
		return printJSON(map[string]any{
			"file":       settingsFile,
			"path":       cfg.Path,
			"x_offset":   cfg.XOffset,
			"y_offset":   cfg.YOffset,
			"scale":      cfg.Scale,
			"bone_name":  cfg.BoneName,
			"backup_dir": cfg.BackupDir,
		})
	}

	file := settingsFile
	if file == "" {
		file = "(none)"
	}
	printInfo("\nSettings: %s\n", file)
	printInfo("  Path:       %s\n", orDash(cfg.Path))
	printInfo("  X offset:   %d\n", cfg.XOffset)
	printInfo("  Y offset:   %d\n", cfg.YOffset)
	printInfo("  Scale:      %g\n", cfg.Scale)
	printInfo("  Bone name:  %s\n", orDash(cfg.BoneName))
	printInfo("  Backup dir: %s\n", orDash(cfg.BackupDir))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
