package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/joshuapare/skelkit/internal/logger"
	"github.com/joshuapare/skelkit/internal/settings"
	"github.com/joshuapare/skelkit/pkg/skel"
)

var (
	patchX         int32
	patchY         int32
	patchScale     float32
	patchBone      string
	patchBackupDir string
	patchNoSave    bool
)

func init() {
	cmd := newPatchCmd()
	bindPatchFlags(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

func bindPatchFlags(fs *pflag.FlagSet) {
	fs.Int32Var(&patchX, "x", 0, "Amount added to the root bone X offset")
	fs.Int32Var(&patchY, "y", 0, "Amount added to the root bone Y offset")
	fs.Float32Var(&patchScale, "scale", 1, "Factor applied to both root bone scales")
	fs.StringVar(&patchBone, "bone", "", "Only patch files named <bone> or <bone>.skel (directories)")
	fs.StringVar(&patchBackupDir, "backup-dir", "", "Backup directory (default: ./backup beside the target)")
	fs.BoolVar(&patchNoSave, "no-save", false, "Do not remember these values")
}

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch [file.skel | directory]",
		Short: "Shift and scale the root bone of one or many skeletons",
		Long: `The patch command adds --x and --y to the root bone offsets and multiplies
both root bone scales by --scale. Given a directory it patches every .skel file
below it and stops at the first failure.

Each file is copied to the backup directory before it is changed. Flags that
are not given fall back to the values saved by the previous run.

Example:
  skelctl patch hero.skel --y -260
  skelctl patch assets/spine --x 10 --scale 1.5
  skelctl patch assets/spine --bone hero --backup-dir /tmp/skel-backup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(args, cmd.Flags())
		},
	}
	return cmd
}

// patchParams are the effective values for one run.
type patchParams struct {
	path      string
	x, y      int32
	scale     float32
	bone      string
	backupDir string
}

// resolvePatchParams merges the flags the user set over the saved settings.
func resolvePatchParams(args []string, flags *pflag.FlagSet) (patchParams, error) {
	p := patchParams{
		path:      cfg.Path,
		x:         cfg.XOffset,
		y:         cfg.YOffset,
		scale:     cfg.Scale,
		bone:      cfg.BoneName,
		backupDir: cfg.BackupDir,
	}
	if len(args) > 0 {
		p.path = args[0]
	}
	if flags.Changed("x") {
		p.x = patchX
	}
	if flags.Changed("y") {
		p.y = patchY
	}
	if flags.Changed("scale") {
		p.scale = patchScale
	}
	if flags.Changed("bone") {
		p.bone = patchBone
	}
	if flags.Changed("backup-dir") {
		p.backupDir = patchBackupDir
	}
	if p.path == "" {
		return p, errors.New("no path given and no saved path to fall back to")
	}
	return p, nil
}

func runPatch(args []string, flags *pflag.FlagSet) error {
	p, err := resolvePatchParams(args, flags)
	if err != nil {
		return err
	}

	backupRoot := p.backupDir
	if backupRoot == "" {
		backupRoot = skel.DefaultBackupRoot(p.path)
	}

	printVerbose("Patching %s: x%+d y%+d scale x%g, backups in %s\n", p.path, p.x, p.y, p.scale, backupRoot)
	logger.Info("patch start", "path", p.path, "x", p.x, "y", p.y, "scale", p.scale,
		"bone", p.bone, "backup_root", backupRoot)

	if info, statErr := os.Stat(p.path); statErr == nil && info.IsDir() {
		err = patchDirectory(p, backupRoot)
	} else {
		err = patchSingle(p, backupRoot)
	}
	if err != nil {
		return err
	}

	if !patchNoSave && settingsFile != "" {
		saved := settings.Settings{
			Path:      p.path,
			XOffset:   p.x,
			YOffset:   p.y,
			Scale:     p.scale,
			BoneName:  p.bone,
			BackupDir: p.backupDir,
		}
		if saveErr := settings.Save(settingsFile, saved); saveErr != nil {
			printError("%v\n", saveErr)
			logger.Warn("settings save failed", "path", settingsFile, "error", saveErr)
		} else {
			cfg = saved
		}
	}
	return nil
}

func patchSingle(p patchParams, backupRoot string) error {
	res, err := skel.PatchFile(p.path, p.x, p.y, p.scale, backupRoot)
	if err != nil {
		logger.Error("patch failed", "path", p.path, "error", err)
		return fmt.Errorf("failed to patch %s: %w", p.path, err)
	}
	logPatched(res)

	if jsonOut {
		return printJSON(res)
	}

	printInfo("\nPatched %s\n", res.Path)
	printInfo("  Backup:   %s\n", res.BackupPath)
	printInfo("  Marker:   0x%X\n", res.MarkerOffset)
	printInfo("  X offset: %g -> %g\n", res.Before.XOffset, res.After.XOffset)
	printInfo("  Y offset: %g -> %g\n", res.Before.YOffset, res.After.YOffset)
	printInfo("  Scale X:  %g -> %g\n", res.Before.ScaleX, res.After.ScaleX)
	printInfo("  Scale Y:  %g -> %g\n", res.Before.ScaleY, res.After.ScaleY)
	return nil
}

type directoryReport struct {
	Path      string        `json:"path"`
	BackupDir string        `json:"backup_dir"`
	Count     int           `json:"count"`
	Files     []skel.Result `json:"files"`
}

func patchDirectory(p patchParams, backupRoot string) error {
	report := directoryReport{Path: p.path, BackupDir: backupRoot, Files: []skel.Result{}}

	count, err := skel.PatchDirectory(p.path, p.x, p.y, p.scale, backupRoot, &skel.DirectoryOptions{
		BoneName: p.bone,
		OnFile: func(res skel.Result) {
			logPatched(res)
			report.Files = append(report.Files, res)
			printVerbose("  patched %s\n", res.Path)
		},
	})
	report.Count = count
	if err != nil {
		logger.Error("directory patch stopped", "path", p.path, "patched", count, "error", err)
		return fmt.Errorf("patched %d file(s) before failure: %w", count, err)
	}
	logger.Info("directory patch done", "path", p.path, "patched", count)

	if jsonOut {
		return printJSON(report)
	}
	if count == 0 {
		printInfo("No matching %s files found in %s\n", skel.Extension, p.path)
		return nil
	}
	printInfo("Patched %d file(s) in %s\n", count, p.path)
	printInfo("Backups in %s\n", backupRoot)
	return nil
}

func logPatched(res skel.Result) {
	logger.Debug("file patched",
		"path", res.Path,
		"backup", res.BackupPath,
		"marker", res.MarkerOffset,
		"before", res.Before,
		"after", res.After,
	)
}
