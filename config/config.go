package config

import (
	"strings"
	"time"

	"goban/game"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "GOBAN"

type Config struct {
	Mode        string        `mapstructure:"mode"`       // "selfplay", "human" or "experiment"
	Experiment  string        `mapstructure:"experiment"` // "strength" or "throughput"
	BoardSize   int           `mapstructure:"board_size"`
	Rounds      int           `mapstructure:"rounds"`
	Duration    time.Duration `mapstructure:"duration"`
	Temperature float64       `mapstructure:"temperature"`
	Cutoff      int           `mapstructure:"cutoff"`
	Games       int           `mapstructure:"games"`
	MaxMoves    int           `mapstructure:"max_moves"`
	Seed        uint64        `mapstructure:"seed"` // 0 seeds from the clock
	OutputDir   string        `mapstructure:"output_dir"`
	LogLevel    string        `mapstructure:"log_level"`
	ShowBoard   bool          `mapstructure:"show_board"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "selfplay")
	v.SetDefault("experiment", "strength")
	v.SetDefault("board_size", 9)
	v.SetDefault("rounds", 200)
	v.SetDefault("duration", time.Duration(0))
	v.SetDefault("temperature", 1.5)
	v.SetDefault("cutoff", 0)
	v.SetDefault("games", 10)
	v.SetDefault("max_moves", 500)
	v.SetDefault("seed", 0)
	v.SetDefault("output_dir", "experiments")
	v.SetDefault("log_level", "info")
	v.SetDefault("show_board", false)
}

// Flags returns the command-line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("goban", pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("mode", "selfplay", "selfplay, human or experiment")
	fs.String("experiment", "strength", "strength or throughput, used in experiment mode")
	fs.Int("board-size", 9, "board size")
	fs.Int("rounds", 200, "search rounds per move")
	fs.Duration("duration", 0, "search time per move, used when rounds is 0")
	fs.Float64("temperature", 1.5, "UCT exploration constant")
	fs.Int("cutoff", 0, "maximum rollout depth, 0 for none")
	fs.Int("games", 10, "games per experiment match-up")
	fs.Int("max-moves", 500, "moves before a game is abandoned")
	fs.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	fs.String("output-dir", "experiments", "directory for experiment records")
	fs.String("log-level", "info", "zerolog level")
	fs.Bool("show-board", false, "print the board after every move")
	return fs
}

// Load merges defaults, the optional config file, GOBAN_* environment
// variables and flags that were set explicitly, in increasing priority.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if f.Name == "config" || bindErr != nil || !f.Changed {
				return
			}
			bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
		if bindErr != nil {
			return nil, errors.Wrap(bindErr, "bind flags")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Mode {
	case "selfplay", "human", "experiment":
	default:
		return errors.Errorf("unknown mode %q", c.Mode)
	}
	switch c.Experiment {
	case "strength", "throughput":
	default:
		return errors.Errorf("unknown experiment %q", c.Experiment)
	}
	if c.BoardSize < 1 || c.BoardSize > game.MaxBoardSize {
		return errors.Errorf("board size %d outside 1..%d", c.BoardSize, game.MaxBoardSize)
	}
	if c.Rounds <= 0 && c.Duration <= 0 {
		return errors.New("rounds or duration must be positive")
	}
	if c.Games <= 0 {
		return errors.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Temperature < 0 {
		return errors.Errorf("temperature must not be negative, got %v", c.Temperature)
	}
	return nil
}
