// Package config provides YAML-based game configuration loading for the
// platform.
package config

// TetrisConfig contains all tunable parameters for the Tetris game.
type TetrisConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Queue  QueueConfig  `yaml:"queue"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// QueueConfig defines the next-piece queue.
type QueueConfig struct {
	Lookahead int `yaml:"lookahead"`
}

// TimingConfig defines gravity and lock-delay timing in seconds.
// The fall delay for a level is
// max(min_fall_delay, base_fall_delay - (level-1)*fall_delay_step).
type TimingConfig struct {
	LockDelay     float64 `yaml:"lock_delay"`
	BaseFallDelay float64 `yaml:"base_fall_delay"`
	FallDelayStep float64 `yaml:"fall_delay_step"`
	MinFallDelay  float64 `yaml:"min_fall_delay"`
}

// RulesConfig defines session rules.
type RulesConfig struct {
	StartLevel int `yaml:"start_level"` // 1-10
}

// Normalize clamps out-of-range values back to playable defaults so a
// hand-edited config can never produce a degenerate board or a zero
// gravity interval.
func (c *TetrisConfig) Normalize() {
	def := DefaultTetrisConfig()

	if c.Board.Width < 4 {
		c.Board.Width = def.Board.Width
	}
	if c.Board.Height < 4 {
		c.Board.Height = def.Board.Height
	}
	if c.Queue.Lookahead < 1 || c.Queue.Lookahead > 7 {
		c.Queue.Lookahead = def.Queue.Lookahead
	}
	if c.Timing.LockDelay <= 0 {
		c.Timing.LockDelay = def.Timing.LockDelay
	}
	if c.Timing.BaseFallDelay <= 0 {
		c.Timing.BaseFallDelay = def.Timing.BaseFallDelay
	}
	if c.Timing.FallDelayStep < 0 {
		c.Timing.FallDelayStep = def.Timing.FallDelayStep
	}
	if c.Timing.MinFallDelay <= 0 {
		c.Timing.MinFallDelay = def.Timing.MinFallDelay
	}
	if c.Rules.StartLevel < 1 {
		c.Rules.StartLevel = 1
	}
	if c.Rules.StartLevel > 10 {
		c.Rules.StartLevel = 10
	}
}
