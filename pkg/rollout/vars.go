package rollout

import "time"

const (
	// Number of lookahead playouts per candidate move at the top level
	DefaultTrials int = 200

	// Number of random playouts per move inside the lookahead policy
	DefaultLookaheadTrials int = 100

	// Playouts longer than this count as unfinished games
	DefaultMaxPlies int = 30

	// Lookahead depth at which the policy falls back to random play
	DefaultCutoff int = 3

	DefaultMovetimeLimit int = -1
)

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for the random number generators used in playouts,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
