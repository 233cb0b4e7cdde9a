package usecase

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/IlikeChooros/go-dograbbit/pkg/bench"
	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
	"github.com/IlikeChooros/go-dograbbit/pkg/rollout"
)

// Environment variables read by both commands
const (
	EnvThreads  = "DOGRABBIT_THREADS"
	EnvSeed     = "DOGRABBIT_SEED"
	EnvLogLevel = "DOGRABBIT_LOG_LEVEL"
)

const DefaultLogLevel = zerolog.WarnLevel

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingSide   = errors.New("missing side to move, use --next")
)

// Lookup of environment variables, os.Getenv in the commands
type Env func(key string) string

// Load a .env file into the process environment, a missing file is not an error.
// Variables already set in the environment take precedence
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	return nil
}

// Settings shared by the solver and the arena
type CommonConfig struct {
	Color    bool
	Seed     int64
	HasSeed  bool
	LogLevel zerolog.Level
	Limits   *rollout.Limits
}

// Pin the seed generator if a seed was given
func (c *CommonConfig) ApplySeed() {
	if !c.HasSeed {
		return
	}
	seed := c.Seed
	rollout.SetSeedGeneratorFn(func() int64 {
		return seed
	})
}

type SolveConfig struct {
	CommonConfig
	Verbose bool
	Mirror  bool
	Next    dograbbit.Entity
	Board   string // notation, empty to read the board from the input
	Lenient bool
}

type ArenaConfig struct {
	CommonConfig
	Player1  string
	Player2  string
	Games    uint
	Board    string
	First    dograbbit.Entity
	MaxPlies int
	JSON     bool
	Verbose  bool
}

// Flags of both commands, their defaults come from the environment
type commonFlags struct {
	threads         int
	seed            string
	logLevel        string
	color           bool
	trials          int
	lookaheadTrials int
	maxPlies        int
	cutoff          int
	movetime        int
}

func registerCommon(set *pflag.FlagSet, env Env) (*commonFlags, error) {
	threads := 1
	if v := env(EnvThreads); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvThreads, v, err)
		}
		threads = n
	}

	logLevel := DefaultLogLevel.String()
	if v := env(EnvLogLevel); v != "" {
		logLevel = v
	}

	limits := rollout.DefaultLimits()
	f := &commonFlags{}
	set.IntVarP(&f.threads, "threads", "t", threads, "number of goroutines evaluating candidates (env "+EnvThreads+")")
	set.StringVar(&f.seed, "seed", env(EnvSeed), "seed of the random generators, time based if empty (env "+EnvSeed+")")
	set.StringVar(&f.logLevel, "log-level", logLevel, "trace, debug, info, warn, error or disabled (env "+EnvLogLevel+")")
	set.BoolVar(&f.color, "color", false, "colorize diagnostics when the output is a terminal")
	set.IntVar(&f.trials, "trials", limits.Trials, "lookahead playouts per candidate move")
	set.IntVar(&f.lookaheadTrials, "lookahead-trials", limits.LookaheadTrials, "random playouts per lookahead choice")
	set.IntVar(&f.maxPlies, "max-plies", limits.MaxPlies, "ply cap of a single playout")
	set.IntVar(&f.cutoff, "cutoff", limits.Cutoff, "playout depth from which the lookahead plays randomly")
	set.IntVar(&f.movetime, "movetime", limits.Movetime, "time limit in milliseconds, -1 for none")
	return f, nil
}

func (f *commonFlags) build() (CommonConfig, error) {
	level, err := zerolog.ParseLevel(f.logLevel)
	if err != nil || f.logLevel == "" {
		return CommonConfig{}, fmt.Errorf("%w: log level %q", ErrInvalidConfig, f.logLevel)
	}

	cfg := CommonConfig{
		Color:    f.color,
		LogLevel: level,
		Limits: rollout.DefaultLimits().
			SetTrials(f.trials).
			SetLookaheadTrials(f.lookaheadTrials).
			SetMaxPlies(f.maxPlies).
			SetCutoff(f.cutoff).
			SetMovetime(f.movetime).
			SetThreads(f.threads),
	}

	if f.seed != "" {
		seed, err := strconv.ParseInt(f.seed, 10, 64)
		if err != nil {
			return CommonConfig{}, fmt.Errorf("%w: seed %q: %v", ErrInvalidConfig, f.seed, err)
		}
		cfg.Seed, cfg.HasSeed = seed, true
	}
	return cfg, nil
}

func parse(set *pflag.FlagSet, args []string) error {
	if err := set.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if set.NArg() != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, set.Args())
	}
	return nil
}

// Parse the solver's command line, 'args' without the program name.
// Usage and parse errors are written to 'errOut'
func ParseSolveFlags(args []string, env Env, errOut io.Writer) (*SolveConfig, error) {
	set := pflag.NewFlagSet("dograbbit", pflag.ContinueOnError)
	set.SetOutput(errOut)

	cfg := &SolveConfig{}
	var next string
	set.BoolVarP(&cfg.Verbose, "verbose", "v", false, "print every candidate move with its probability")
	set.BoolVarP(&cfg.Mirror, "mirror", "m", false, "mirror the board before solving and the result back")
	set.StringVarP(&next, "next", "n", "", "side to move: D, Dog, dog or d for the dogs, anything else for the rabbit")
	set.StringVarP(&cfg.Board, "board", "b", "", "board notation (e.g. "+dograbbit.StartingPosition+" or startpos) instead of the input")
	set.BoolVar(&cfg.Lenient, "lenient", false, "pad or cut malformed input rows instead of rejecting them")

	common, err := registerCommon(set, env)
	if err != nil {
		return nil, err
	}
	if err := parse(set, args); err != nil {
		return nil, err
	}

	if !set.Changed("next") {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, ErrMissingSide)
	}
	cfg.Next = dograbbit.ParseSide(next)

	if cfg.CommonConfig, err = common.build(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse the arena's command line, 'args' without the program name
func ParseArenaFlags(args []string, env Env, errOut io.Writer) (*ArenaConfig, error) {
	set := pflag.NewFlagSet("dograbbit-arena", pflag.ContinueOnError)
	set.SetOutput(errOut)

	cfg := &ArenaConfig{}
	var first string
	set.StringVar(&cfg.Player1, "player1", "solver", fmt.Sprintf("first agent, one of %v", bench.AgentNames))
	set.StringVar(&cfg.Player2, "player2", "random", fmt.Sprintf("second agent, one of %v", bench.AgentNames))
	set.UintVarP(&cfg.Games, "games", "g", 20, "number of games, sides alternate every game")
	set.StringVarP(&cfg.Board, "board", "b", "startpos", "start position notation")
	set.StringVar(&first, "first", "D", "side moving first in every game")
	set.IntVar(&cfg.MaxPlies, "game-plies", bench.DefaultArenaMaxPlies, "games longer than this are drawn")
	set.BoolVar(&cfg.JSON, "json", false, "print the summary as JSON")
	set.BoolVarP(&cfg.Verbose, "verbose", "v", false, "print a line per finished game")

	common, err := registerCommon(set, env)
	if err != nil {
		return nil, err
	}
	if err := parse(set, args); err != nil {
		return nil, err
	}

	if cfg.Games == 0 {
		return nil, fmt.Errorf("%w: --games must be positive", ErrInvalidConfig)
	}
	if cfg.MaxPlies <= 0 {
		return nil, fmt.Errorf("%w: --game-plies must be positive", ErrInvalidConfig)
	}
	cfg.First = dograbbit.ParseSide(first)

	if cfg.CommonConfig, err = common.build(); err != nil {
		return nil, err
	}
	return cfg, nil
}
