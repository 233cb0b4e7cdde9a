package usecase

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-dograbbit/pkg/dograbbit"
	"github.com/IlikeChooros/go-dograbbit/pkg/rollout"
)

func envOf(vars map[string]string) Env {
	return func(key string) string {
		return vars[key]
	}
}

func TestParseSolveFlags(t *testing.T) {
	cfg, err := ParseSolveFlags([]string{"-v", "-m", "-n", "D"}, envOf(nil), io.Discard)
	require.NoError(t, err)
	require.True(t, cfg.Verbose)
	require.True(t, cfg.Mirror)
	require.Equal(t, dograbbit.Dog, cfg.Next)
	require.False(t, cfg.HasSeed)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.Equal(t, *rollout.DefaultLimits(), *cfg.Limits)

	cfg, err = ParseSolveFlags([]string{
		"--next", "rabbit", "--board", "startpos", "--lenient", "--color",
		"-t", "4", "--seed", "7", "--trials", "10", "--lookahead-trials", "5",
		"--max-plies", "12", "--cutoff", "1", "--movetime", "250", "--log-level", "debug",
	}, envOf(nil), io.Discard)
	require.NoError(t, err)
	require.False(t, cfg.Verbose)
	require.Equal(t, dograbbit.Rabbit, cfg.Next)
	require.Equal(t, "startpos", cfg.Board)
	require.True(t, cfg.Lenient)
	require.True(t, cfg.Color)
	require.True(t, cfg.HasSeed)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	require.Equal(t, rollout.Limits{Trials: 10, LookaheadTrials: 5, MaxPlies: 12, Cutoff: 1, Movetime: 250, NThreads: 4}, *cfg.Limits)
}

func TestParseSolveFlagsSide(t *testing.T) {
	for _, tt := range []struct {
		value string
		want  dograbbit.Entity
	}{
		{"D", dograbbit.Dog},
		{"Dog", dograbbit.Dog},
		{"dog", dograbbit.Dog},
		{"d", dograbbit.Dog},
		{"DOG", dograbbit.Rabbit},
		{"R", dograbbit.Rabbit},
		{"", dograbbit.Rabbit},
	} {
		cfg, err := ParseSolveFlags([]string{"--next=" + tt.value}, envOf(nil), io.Discard)
		require.NoError(t, err, tt.value)
		require.Equal(t, tt.want, cfg.Next, "--next=%q", tt.value)
	}
}

func TestParseSolveFlagsEnv(t *testing.T) {
	env := envOf(map[string]string{
		EnvThreads:  "3",
		EnvSeed:     "99",
		EnvLogLevel: "info",
	})

	cfg, err := ParseSolveFlags([]string{"-n", "d"}, env, io.Discard)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Limits.NThreads)
	require.True(t, cfg.HasSeed)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)

	// Flags win over the environment
	cfg, err = ParseSolveFlags([]string{"-n", "d", "--threads", "2", "--seed", "5", "--log-level", "error"}, env, io.Discard)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Limits.NThreads)
	require.Equal(t, int64(5), cfg.Seed)
	require.Equal(t, zerolog.ErrorLevel, cfg.LogLevel)
}

func TestParseSolveFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"missing next", []string{"-v"}, nil},
		{"unknown flag", []string{"-n", "D", "--depth", "3"}, nil},
		{"positional", []string{"-n", "D", "board.txt"}, nil},
		{"bad threads flag", []string{"-n", "D", "-t", "many"}, nil},
		{"bad seed", []string{"-n", "D", "--seed", "x"}, nil},
		{"bad log level", []string{"-n", "D", "--log-level", "loud"}, nil},
		{"bad threads env", []string{"-n", "D"}, map[string]string{EnvThreads: "two"}},
		{"bad seed env", []string{"-n", "D"}, map[string]string{EnvSeed: "1.5"}},
	}

	for _, tt := range tests {
		_, err := ParseSolveFlags(tt.args, envOf(tt.env), io.Discard)
		require.ErrorIs(t, err, ErrInvalidConfig, tt.name)
	}

	_, err := ParseSolveFlags([]string{"-v"}, envOf(nil), io.Discard)
	require.ErrorIs(t, err, ErrMissingSide)

	_, err = ParseSolveFlags([]string{"--help"}, envOf(nil), io.Discard)
	require.True(t, errors.Is(err, pflag.ErrHelp))
}

func TestParseArenaFlags(t *testing.T) {
	cfg, err := ParseArenaFlags(nil, envOf(nil), io.Discard)
	require.NoError(t, err)
	require.Equal(t, "solver", cfg.Player1)
	require.Equal(t, "random", cfg.Player2)
	require.Equal(t, uint(20), cfg.Games)
	require.Equal(t, "startpos", cfg.Board)
	require.Equal(t, dograbbit.Dog, cfg.First)
	require.False(t, cfg.JSON)

	cfg, err = ParseArenaFlags([]string{
		"--player1", "lookahead", "--player2", "greedy", "-g", "6", "--first", "R",
		"--game-plies", "50", "--json", "-v", "-t", "3", "--trials", "8",
	}, envOf(nil), io.Discard)
	require.NoError(t, err)
	require.Equal(t, "lookahead", cfg.Player1)
	require.Equal(t, "greedy", cfg.Player2)
	require.Equal(t, uint(6), cfg.Games)
	require.Equal(t, dograbbit.Rabbit, cfg.First)
	require.Equal(t, 50, cfg.MaxPlies)
	require.True(t, cfg.JSON)
	require.True(t, cfg.Verbose)
	require.Equal(t, 3, cfg.Limits.NThreads)
	require.Equal(t, 8, cfg.Limits.Trials)

	_, err = ParseArenaFlags([]string{"--games", "0"}, envOf(nil), io.Discard)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = ParseArenaFlags([]string{"--game-plies", "0"}, envOf(nil), io.Discard)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "DOGRABBIT_TEST_DOTENV"
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv(key) })

	require.NoError(t, LoadDotEnv(path))
	require.Equal(t, "from-file", os.Getenv(key))

	// Already set variables are kept
	t.Setenv(key, "from-env")
	require.NoError(t, LoadDotEnv(path))
	require.Equal(t, "from-env", os.Getenv(key))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
