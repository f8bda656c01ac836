// Package settings persists the last-used patch parameters between runs.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/skelkit/internal/patch"
)

const (
	appDir   = "skelkit"
	fileName = "settings.yaml"
)

// Settings are the values remembered from the previous patch run.
type Settings struct {
	Path      string  `yaml:"path"`
	XOffset   int32   `yaml:"x_offset"`
	YOffset   int32   `yaml:"y_offset"`
	Scale     float32 `yaml:"scale"`
	BoneName  string  `yaml:"bone_name"`
	BackupDir string  `yaml:"backup_dir"`
}

// Default returns the settings used when nothing has been saved yet.
func Default() Settings {
	return Settings{
		XOffset: 0,
		YOffset: -260,
		Scale:   1.0,
	}
}

// DefaultPath returns the per-user settings file location under the XDG
// config home ($XDG_CONFIG_HOME/skelkit/settings.yaml on Linux).
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, fileName)
}

// Load reads settings from path. A missing file yields Default() and no error.
// A file that cannot be read or parsed yields Default() and the error, so
// callers can warn and continue.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("settings: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("settings: parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path, creating the parent directory if needed.
func Save(path string, s Settings) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("settings: resolve path: %w", err)
	}

	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings: create dir: %w", err)
	}

	w := patch.NewOSWriter()
	if err := w.WriteAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	return nil
}
