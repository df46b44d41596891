package config

import (
	"errors"
	"fmt"
)

// Simulation

var NodesCount = 40
var Cycles = 10
var Seed uint64 = 1

// Overlay

var Fanout = 4
var MinNeighbors = 1
var MaxNeighbors = 20

var ErrInvalidConfig = errors.New("invalid gossip configuration")

// SmallNetworkPolicy decides what happens when the first cycle finds fewer
// nodes than a neighborhood may hold.
type SmallNetworkPolicy int

const (
	// ClampNeighbors lowers the max neighborhood size to the number of nodes.
	ClampNeighbors SmallNetworkPolicy = iota
	// FailOnSmallNetwork refuses to start the simulation.
	FailOnSmallNetwork
)

func (p SmallNetworkPolicy) String() string {
	switch p {
	case ClampNeighbors:
		return "clamp"
	case FailOnSmallNetwork:
		return "fail"
	default:
		return "unknown"
	}
}

// ParsePolicy converts the textual form used in parameter files.
func ParsePolicy(s string) (SmallNetworkPolicy, error) {
	switch s {
	case "", "clamp":
		return ClampNeighbors, nil
	case "fail":
		return FailOnSmallNetwork, nil
	default:
		return ClampNeighbors, fmt.Errorf("%w: unknown small network policy %q", ErrInvalidConfig, s)
	}
}

// Config holds the gossip protocol parameters. It is immutable once built.
type Config struct {
	fanout       int
	minNeighbors int
	maxNeighbors int
	policy       SmallNetworkPolicy
}

type Option func(*Config)

// WithMinNeighbors sets the lower bound of a node's initial neighborhood size.
func WithMinNeighbors(n int) Option {
	return func(c *Config) {
		c.minNeighbors = n
	}
}

func WithPolicy(p SmallNetworkPolicy) Option {
	return func(c *Config) {
		c.policy = p
	}
}

// New validates and builds a Config. fanout is the number of neighbors a node
// pushes its message to per cycle and maxNeighbors the largest initial
// neighborhood, which must exceed the fanout.
func New(fanout, maxNeighbors int, opts ...Option) (Config, error) {
	c := Config{
		fanout:       fanout,
		maxNeighbors: maxNeighbors,
		minNeighbors: 1,
		policy:       ClampNeighbors,
	}
	for _, opt := range opts {
		opt(&c)
	}

	if c.fanout <= 0 {
		return Config{}, fmt.Errorf("%w: fanout must be greater than 0, got %d", ErrInvalidConfig, c.fanout)
	}
	if c.maxNeighbors <= 0 {
		return Config{}, fmt.Errorf(
			"%w: max number of neighbors must be greater than 0, got %d", ErrInvalidConfig, c.maxNeighbors)
	}
	if c.maxNeighbors <= c.fanout {
		return Config{}, fmt.Errorf(
			"%w: max number of neighbors (%d) must be greater than the fanout (%d)",
			ErrInvalidConfig, c.maxNeighbors, c.fanout)
	}
	if c.minNeighbors < 0 {
		return Config{}, fmt.Errorf(
			"%w: min number of neighbors must not be negative, got %d", ErrInvalidConfig, c.minNeighbors)
	}
	if c.minNeighbors > c.maxNeighbors {
		return Config{}, fmt.Errorf(
			"%w: min number of neighbors (%d) must not exceed the max number of neighbors (%d)",
			ErrInvalidConfig, c.minNeighbors, c.maxNeighbors)
	}
	if c.policy != ClampNeighbors && c.policy != FailOnSmallNetwork {
		return Config{}, fmt.Errorf("%w: unknown small network policy %d", ErrInvalidConfig, c.policy)
	}

	return c, nil
}

// Fanout is the max number of neighbors a message is pushed to per cycle.
func (c Config) Fanout() int {
	return c.fanout
}

func (c Config) MinNeighbors() int {
	return c.minNeighbors
}

func (c Config) MaxNeighbors() int {
	return c.maxNeighbors
}

func (c Config) Policy() SmallNetworkPolicy {
	return c.policy
}

// ClampedTo returns a copy whose neighborhood bounds do not exceed n.
// The copy skips validation: a clamped max may no longer exceed the fanout.
func (c Config) ClampedTo(n int) Config {
	if n < 0 {
		n = 0
	}
	if c.maxNeighbors > n {
		c.maxNeighbors = n
	}
	if c.minNeighbors > c.maxNeighbors {
		c.minNeighbors = c.maxNeighbors
	}
	return c
}

func (c Config) String() string {
	return fmt.Sprintf(
		"fanout=%d neighbors=[%d,%d] policy=%s",
		c.fanout, c.minNeighbors, c.maxNeighbors, c.policy)
}
