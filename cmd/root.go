package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/minefield/director/constraint"
	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
)

var log = logrus.New()

type options struct {
	gameConfig game.GameConfig

	configPath   string
	snapshotPath string
	directorName string
	logLevel     string
	plain        bool
}

func newRootCmd() *cobra.Command {
	opts := options{
		gameConfig:   game.NewGameConfig(),
		directorName: "none",
		logLevel:     logrus.WarnLevel.String(),
	}

	rootCmd := &cobra.Command{
		Use:   "minefield",
		Short: "Play manual or computer-driven Minesweeper on a square board",
		Long: `minefield is a Minesweeper game played in the terminal, by a
human or by the computer.

Run with no arguments to play manually
	minefield

Choose a director to make the computer play for you
	minefield --director constraint
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(cmd); err != nil {
				return err
			}

			session, err := game.NewSession(opts.gameConfig)
			if err != nil {
				return err
			}

			director, err := newDirector(opts.directorName)
			if err != nil {
				return err
			}

			if director != nil {
				return autoplay(cmd.OutOrStdout(), session, director, opts.plain)
			}
			return play(cmd.InOrStdin(), cmd.OutOrStdout(), session, opts.plain)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&opts.gameConfig.SideLength, "side", "s", game.DefaultSideLength, "Number of cells along each side of the board")
	flags.IntVarP(&opts.gameConfig.NumMines, "mines", "m", game.DefaultNumMines, "Number of mines to place in the board")
	flags.Int64Var(&opts.gameConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	flags.BoolVar(&opts.gameConfig.ShowGrid, "show-grid", false, "Log the mine layout of every new board")
	flags.StringVar(&opts.gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory where the final board of each game is saved")
	flags.StringVar(&opts.snapshotPath, "snapshot", "", "Load the board from a saved snapshot")
	flags.BoolVar(&opts.gameConfig.LoadSnapshotFresh, "fresh", true, "Hide every cell of a loaded snapshot")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML file with game settings; flags take precedence")
	flags.VarP(newDirectorValue(&opts.directorName), "director", "d", "Make the computer play: none, random or constraint")
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level: debug, info, warn or error")
	flags.BoolVar(&opts.plain, "plain", false, "Disable colors")

	return rootCmd
}

// load applies the config file, then any flags given explicitly on top of it
func (opts *options) load(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(cmd.ErrOrStderr())
	opts.gameConfig.Log = log

	if opts.configPath != "" {
		flagged := opts.gameConfig
		if err := game.LoadGameConfigFile(opts.configPath, &opts.gameConfig); err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("side") {
			opts.gameConfig.SideLength = flagged.SideLength
		}
		if flags.Changed("mines") {
			opts.gameConfig.NumMines = flagged.NumMines
		}
		if flags.Changed("seed") {
			opts.gameConfig.Seed = flagged.Seed
		}
		if flags.Changed("show-grid") {
			opts.gameConfig.ShowGrid = flagged.ShowGrid
		}
		if flags.Changed("snapshots-dir") {
			opts.gameConfig.SavedSnapshotsDir = flagged.SavedSnapshotsDir
		}
		if flags.Changed("fresh") {
			opts.gameConfig.LoadSnapshotFresh = flagged.LoadSnapshotFresh
		}
	}

	if opts.snapshotPath != "" {
		in, err := os.ReadFile(opts.snapshotPath)
		if err != nil {
			return fmt.Errorf("reading snapshot: %w", err)
		}
		snapshot, err := game.LoadSnapshot(string(in))
		if err != nil {
			return err
		}
		opts.gameConfig.Snapshot = snapshot
	}

	return nil
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var directorNames = []string{"none", "random", "constraint"}

func newDirector(name string) (game.Director, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "random":
		return &random.Director{}, nil
	case "constraint":
		return &constraint.Director{Log: log}, nil
	default:
		return nil, fmt.Errorf("unknown director %q", name)
	}
}

type directorValue string

func newDirectorValue(p *string) *directorValue {
	return (*directorValue)(p)
}

func (value *directorValue) String() string {
	return string(*value)
}

func (value *directorValue) Set(name string) error {
	for _, known := range directorNames {
		if name == known {
			*value = directorValue(name)
			return nil
		}
	}
	return fmt.Errorf("unknown director %q (want one of %s)", name, strings.Join(directorNames, ", "))
}

func (value *directorValue) Type() string {
	return "director"
}
