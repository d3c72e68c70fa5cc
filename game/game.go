package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	SideLength int `yaml:"side"`
	NumMines   int `yaml:"mines"`

	// Seed for the session's random source; zero picks one from the clock
	Seed int64 `yaml:"seed"`

	// Log the mine layout whenever a board is created
	ShowGrid bool `yaml:"show_grid"`

	// Snapshot to load board configuration from
	Snapshot *BoardSnapshot `yaml:"-"`
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool `yaml:"load_snapshot_fresh"`

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string `yaml:"saved_snapshots_dir"`

	Log logrus.FieldLogger `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		SideLength:        DefaultSideLength,
		NumMines:          DefaultNumMines,
		LoadSnapshotFresh: true,
		Log:               defaultLogger,
	}
}

// LoadGameConfigFile overlays the YAML file at path onto config. Fields the
// file does not mention keep their current values.
func LoadGameConfigFile(path string, config *GameConfig) error {
	in, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading game config: %w", err)
	}
	if err := yaml.UnmarshalStrict(in, config); err != nil {
		return fmt.Errorf("parsing game config %s: %w", path, err)
	}
	return nil
}

func (config GameConfig) logger() logrus.FieldLogger {
	if config.Log == nil {
		return defaultLogger
	}
	return config.Log
}

func (config GameConfig) validate() error {
	if config.Snapshot != nil {
		_, err := config.Snapshot.CreateBoard(true)
		return err
	}
	return validateConfig(config.SideLength, config.NumMines)
}

func (config GameConfig) saveSnapshot(snapshot *BoardSnapshot, status Status) (string, error) {
	if config.SavedSnapshotsDir == "" {
		return "", nil
	}

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return "", err
		}
	} else if !stat.Mode().IsDir() {
		return "", fmt.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	now := time.Now()
	for attempt := 1; ; attempt++ {
		filename := config.generateReplayFilename(status, now, attempt)
		path := filepath.Join(config.SavedSnapshotsDir, filename)

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if os.IsExist(err) {
			continue
		} else if err != nil {
			return "", err
		}

		_, err = file.WriteString(snapshot.Serialize())
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return "", err
		}
		return path, nil
	}
}

// generateReplayFilename names a saved board after its end time and status.
// Attempts after the first get a counter, so games ending within the same
// second keep separate files.
func (config GameConfig) generateReplayFilename(status Status, t time.Time, attempt int) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch status {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	if attempt > 1 {
		fmt.Fprintf(&filenameBuilder, "_%d", attempt)
	}

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
