// SPDX-License-Identifier: MIT
// Package: densegraph/harness
//
// config.go: sweep configuration and its validation.

package harness

import "fmt"

// Defaults for a sweep: n = 10, 20, …, 300 with three trials per point.
const (
	DefaultMinNodes = 10
	DefaultMaxNodes = 300
	DefaultStep     = 10
	DefaultTrials   = 3
	DefaultSeed     = 1
)

// Config describes one sweep. The toml tags let the CLI decode it straight
// from an experiment file.
type Config struct {
	MinNodes int   `toml:"min_nodes"`
	MaxNodes int   `toml:"max_nodes"`
	Step     int   `toml:"step"`
	Trials   int   `toml:"trials"`
	Seed     int64 `toml:"seed"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MinNodes: DefaultMinNodes,
		MaxNodes: DefaultMaxNodes,
		Step:     DefaultStep,
		Trials:   DefaultTrials,
		Seed:     DefaultSeed,
	}
}

// Validate reports the first violated constraint, wrapped in ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case c.MinNodes < 1:
		return fmt.Errorf("%w: min_nodes=%d < 1", ErrBadConfig, c.MinNodes)
	case c.MaxNodes < c.MinNodes:
		return fmt.Errorf("%w: max_nodes=%d < min_nodes=%d", ErrBadConfig, c.MaxNodes, c.MinNodes)
	case c.Step < 1:
		return fmt.Errorf("%w: step=%d < 1", ErrBadConfig, c.Step)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials=%d < 1", ErrBadConfig, c.Trials)
	}

	return nil
}

// NodeCounts lists the vertex counts of the sweep: MinNodes, MinNodes+Step,
// … up to and including MaxNodes when it lands on the grid.
func (c Config) NodeCounts() []int {
	if c.Step < 1 || c.MaxNodes < c.MinNodes {
		return nil
	}
	out := make([]int, 0, (c.MaxNodes-c.MinNodes)/c.Step+1)
	for n := c.MinNodes; n <= c.MaxNodes; n += c.Step {
		out = append(out, n)
	}

	return out
}
