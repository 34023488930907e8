package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Queue: QueueConfig{
			Lookahead: 3,
		},
		Timing: TimingConfig{
			LockDelay:     0.5,
			BaseFallDelay: 0.5,
			FallDelayStep: 0.05,
			MinFallDelay:  0.1,
		},
		Rules: RulesConfig{
			StartLevel: 1,
		},
	}
}
