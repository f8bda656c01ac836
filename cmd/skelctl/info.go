package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/skelkit/pkg/skel"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file.skel>",
		Short: "Show the root bone transform of a skeleton",
		Long: `The info command locates the root bone of a Spine .skel file and prints
its position offsets and scales without changing the file.

Example:
  skelctl info hero.skel
  skelctl info hero.skel --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Reading skeleton: %s\n", path)

	bone, err := skel.ReadBoneInfo(path)
	if err != nil {
		return fmt.Errorf("failed to read root bone: %w", err)
	}

	if jsonOut {
		return printJSON(bone)
	}

	printInfo("\nRoot Bone:\n")
	printInfo("  File:     %s\n", path)
	printInfo("  X offset: %g\n", bone.XOffset)
	printInfo("  Y offset: %g\n", bone.YOffset)
	printInfo("  Scale X:  %g\n", bone.ScaleX)
	printInfo("  Scale Y:  %g\n", bone.ScaleY)
	return nil
}
