package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/skelkit/pkg/skel"
)

func init() {
	rootCmd.AddCommand(newMarkersCmd())
}

func newMarkersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markers <file.skel>",
		Short: "List every root marker in a skeleton",
		Long: `The markers command lists every occurrence of the "root" marker in a
file. Only the first one is patched; if a bone or attachment name earlier in
the file contains "root", the patch would land in the wrong place, and this
listing makes that visible.

Example:
  skelctl markers hero.skel`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMarkers(args)
		},
	}
	return cmd
}

type markerReport struct {
	Path    string `json:"path"`
	Markers []int  `json:"markers"`
	Patched int    `json:"patched"`
}

func runMarkers(args []string) error {
	path := args[0]

	offsets, err := skel.Markers(path)
	if err != nil {
		return fmt.Errorf("failed to scan markers: %w", err)
	}
	if len(offsets) == 0 {
		return fmt.Errorf("failed to scan markers: %w", skel.ErrMarkerNotFound)
	}

	if jsonOut {
		return printJSON(markerReport{Path: path, Markers: offsets, Patched: offsets[0]})
	}

	printInfo("\nRoot markers in %s:\n", path)
	for i, off := range offsets {
		tag := ""
		if i == 0 {
			tag = "  <- patched"
		}
		printInfo("  0x%08X (%d)%s\n", off, off, tag)
	}
	if len(offsets) > 1 {
		printInfo("\nWarning: %d markers found; check that the first is the root bone.\n", len(offsets))
	}
	return nil
}
