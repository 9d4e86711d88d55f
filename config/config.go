package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"ataxx/agent"
	"ataxx/meta"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

var ErrInvalidConfig = errors.New("invalid config")

const EnvPrefix = "ATAXX"

type Config struct {
	Player1      string        `mapstructure:"player_1"`
	Player2      string        `mapstructure:"player_2"`
	BoardSize    int           `mapstructure:"board_size"` // Zero draws a random size per run
	BoardSizeMin int           `mapstructure:"board_size_min"`
	BoardSizeMax int           `mapstructure:"board_size_max"`
	Display      bool          `mapstructure:"display"`
	DisplayDelay time.Duration `mapstructure:"display_delay"`
	DisplaySave  bool          `mapstructure:"display_save"` // Write every frame to DisplayPath
	DisplayPath  string        `mapstructure:"display_save_path"`
	Autoplay     bool          `mapstructure:"autoplay"`
	AutoplayRuns int           `mapstructure:"autoplay_runs"`
	MaxTurns     int           `mapstructure:"max_turns"`
	Seed         uint64        `mapstructure:"seed"`
	LogLevel     string        `mapstructure:"log_level"`
	ResultsDir   string        `mapstructure:"results_dir"` // Empty disables CSV output
	MCTS         MCTS          `mapstructure:"mcts"`
}

type MCTS struct {
	Goroutines  int           `mapstructure:"goroutines"`
	Duration    time.Duration `mapstructure:"duration"`
	Episodes    int           `mapstructure:"episodes"`
	Cutoff      int           `mapstructure:"cutoff"`
	Temperature float64       `mapstructure:"temperature"`
}

// Flags returns the command line flags understood by Load. Flag names match
// the config keys, with dots for nested keys.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("ataxx", pflag.ContinueOnError)
	fs.String("config", "", "Path to a YAML config file")
	fs.String("player_1", meta.DefaultAgent, fmt.Sprintf("Agent for player 1 (%s)", strings.Join(agent.Names(), ", ")))
	fs.String("player_2", meta.DefaultAgent, fmt.Sprintf("Agent for player 2 (%s)", strings.Join(agent.Names(), ", ")))
	fs.Int("board_size", 0, "Board size, random between board_size_min and board_size_max if unset")
	fs.Int("board_size_min", meta.BoardSizeMin, "Smallest random board size")
	fs.Int("board_size_max", meta.BoardSizeMax, "Largest random board size")
	fs.Bool("display", false, "Draw the board after every move")
	fs.String("display_delay", meta.DisplayDelay.String(), "Pause between drawn moves, as a duration (400ms) or in seconds (0.4)")
	fs.Bool("display_save", false, "Write every drawn frame to display_save_path")
	fs.String("display_save_path", meta.DisplaySavePath, "Directory for saved frames")
	fs.Bool("autoplay", false, "Play autoplay_runs games and report win rates")
	fs.Int("autoplay_runs", meta.AutoplayRuns, "Number of games in autoplay")
	fs.Int("max_turns", meta.MaxTurns, "Turn limit of a single game")
	fs.Uint64("seed", 0, "Random seed, zero seeds from the clock")
	fs.String("log_level", zerolog.LevelInfoValue, "Log level")
	fs.String("results_dir", "", "Directory for CSV results")
	fs.Int("mcts.goroutines", meta.Goroutines, "Search goroutines of MCTS agents")
	fs.Duration("mcts.duration", meta.SearchDuration, "Per-move search time of MCTS agents")
	fs.Int("mcts.episodes", meta.Episodes, "Per-move search episodes of MCTS agents")
	fs.Int("mcts.cutoff", meta.Cutoff, "Rollout depth before evaluation")
	fs.Float64("mcts.temperature", 1.0, "Sampling temperature of mcts_sampling_agent")
	return fs
}

// Load reads the configuration from defaults, an optional YAML file, ATAXX_
// environment variables and flags, in increasing order of precedence.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		err := v.BindPFlags(flags)
		if err != nil {
			return Config{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		durationHook,
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, cfg.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("player_1", meta.DefaultAgent)
	v.SetDefault("player_2", meta.DefaultAgent)
	v.SetDefault("board_size", 0)
	v.SetDefault("board_size_min", meta.BoardSizeMin)
	v.SetDefault("board_size_max", meta.BoardSizeMax)
	v.SetDefault("display", false)
	v.SetDefault("display_delay", meta.DisplayDelay)
	v.SetDefault("display_save", false)
	v.SetDefault("display_save_path", meta.DisplaySavePath)
	v.SetDefault("autoplay", false)
	v.SetDefault("autoplay_runs", meta.AutoplayRuns)
	v.SetDefault("max_turns", meta.MaxTurns)
	v.SetDefault("seed", 0)
	v.SetDefault("log_level", zerolog.LevelInfoValue)
	v.SetDefault("results_dir", "")
	v.SetDefault("mcts.goroutines", meta.Goroutines)
	v.SetDefault("mcts.duration", meta.SearchDuration)
	v.SetDefault("mcts.episodes", meta.Episodes)
	v.SetDefault("mcts.cutoff", meta.Cutoff)
	v.SetDefault("mcts.temperature", 1.0)
}

// Validate checks the board size contract and the remaining ranges. The rules
// engine accepts any board, so sizes are enforced here.
func (c Config) Validate() error {
	for _, name := range []string{c.Player1, c.Player2} {
		if !slices.Contains(agent.Names(), name) {
			return fmt.Errorf("%w: %w %q", ErrInvalidConfig, agent.ErrUnknownAgent, name)
		}
	}
	if c.BoardSize != 0 {
		if err := validateSize("board_size", c.BoardSize); err != nil {
			return err
		}
	}
	if err := validateSize("board_size_min", c.BoardSizeMin); err != nil {
		return err
	}
	if err := validateSize("board_size_max", c.BoardSizeMax); err != nil {
		return err
	}
	if c.BoardSizeMin > c.BoardSizeMax {
		return fmt.Errorf("%w: board_size_min %d exceeds board_size_max %d", ErrInvalidConfig, c.BoardSizeMin, c.BoardSizeMax)
	}
	if c.AutoplayRuns <= 0 {
		return fmt.Errorf("%w: autoplay_runs must be positive, got %d", ErrInvalidConfig, c.AutoplayRuns)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: max_turns must be positive, got %d", ErrInvalidConfig, c.MaxTurns)
	}
	if c.DisplayDelay < 0 {
		return fmt.Errorf("%w: display_delay must not be negative", ErrInvalidConfig)
	}
	if c.DisplaySave && c.DisplayPath == "" {
		return fmt.Errorf("%w: display_save needs display_save_path", ErrInvalidConfig)
	}
	if c.MCTS.Temperature <= 0 {
		return fmt.Errorf("%w: mcts.temperature must be positive", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return level, nil
}

// AgentOptions returns the search options passed to agent.New. The caller
// picks the seed.
func (c Config) AgentOptions() agent.Options {
	return agent.Options{
		Goroutines:  c.MCTS.Goroutines,
		Duration:    c.MCTS.Duration,
		Episodes:    c.MCTS.Episodes,
		Cutoff:      c.MCTS.Cutoff,
		Temperature: c.MCTS.Temperature,
	}
}

func validateSize(key string, size int) error {
	if size < meta.MinBoardSize || size%2 != 0 {
		return fmt.Errorf("%w: %s must be an even number of at least %d, got %d", ErrInvalidConfig, key, meta.MinBoardSize, size)
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// durationHook decodes durations from duration strings such as "400ms" or
// from plain numbers of seconds such as 0.4.
func durationHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != durationType {
		return data, nil
	}

	switch v := data.(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d, nil
		}
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is neither a duration nor a number of seconds", ErrInvalidConfig, v)
		}
		return seconds(secs), nil
	case float64:
		return seconds(v), nil
	case int:
		return seconds(float64(v)), nil
	default:
		return data, nil
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
