package gossip

import (
	"errors"
	"fmt"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gossip-simulation/config"
	"gossip-simulation/impl/collections"
	"gossip-simulation/impl/eventlogger"
	"gossip-simulation/impl/randomness"
	"gossip-simulation/impl/sampling"
)

var (
	ErrNilSimulator    = errors.New("gossip: a simulator is required")
	ErrNilRandom       = errors.New("gossip: a random source is required")
	ErrNilAcceptance   = errors.New("gossip: an acceptance function is required")
	ErrNetworkTooSmall = errors.New("gossip: the number of nodes must be greater than the max number of neighbors")
)

// CycleSummary is the outcome of one simulation cycle.
type CycleSummary struct {
	RunID    string
	Cycle    int
	Sent     int
	Infected int
	Nodes    int
	// Reason explains why no message was sent. Empty when Sent > 0.
	Reason string
}

type options struct {
	logger *zap.Logger
	events *eventstream.EventStream
}

type Option func(*options)

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventStream publishes a CycleSummary on es after every cycle.
func WithEventStream(es *eventstream.EventStream) Option {
	return func(o *options) {
		o.events = es
	}
}

// Simulator runs the dissemination of data of type T across its nodes.
type Simulator[T any] struct {
	runID      uuid.UUID
	config     config.Config
	random     *randomness.Source
	nodes      *collections.List[*Node[T]]
	cycles     int
	lastNodeID int64

	logger *eventlogger.EventLogger
	events *eventstream.EventStream
}

func NewSimulator[T any](cfg config.Config, random *randomness.Source, opts ...Option) (*Simulator[T], error) {
	if cfg.Fanout() <= 0 {
		return nil, fmt.Errorf("%w: config was not built with config.New", config.ErrInvalidConfig)
	}
	if random == nil {
		return nil, ErrNilRandom
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	runID := uuid.New()
	return &Simulator[T]{
		runID:  runID,
		config: cfg,
		random: random,
		nodes:  collections.NewList[*Node[T]](0),
		logger: eventlogger.InitEventLogger(runID.String(), o.logger),
		events: o.events,
	}, nil
}

func (s *Simulator[T]) nextNodeID() int64 {
	id := s.lastNodeID
	s.lastNodeID++
	return id
}

// addNode registers a node. Duplicates are not detected.
func (s *Simulator[T]) addNode(node *Node[T]) {
	s.nodes.Append(node)
}

func (s *Simulator[T]) RunID() uuid.UUID {
	return s.runID
}

// Config returns the configuration in use, which the first cycle may have
// clamped to the number of nodes.
func (s *Simulator[T]) Config() config.Config {
	return s.config
}

// Nodes returns a read-only view of the registry in creation order.
func (s *Simulator[T]) Nodes() collections.ListView[*Node[T]] {
	return s.nodes.View()
}

func (s *Simulator[T]) NodesCount() int {
	return s.nodes.Len()
}

func (s *Simulator[T]) InfectedNodesCount() int {
	count := 0
	s.nodes.Each(func(node *Node[T]) bool {
		if node.IsInfected() {
			count++
		}
		return true
	})
	return count
}

func (s *Simulator[T]) AllNodesInfected() bool {
	return s.InfectedNodesCount() == s.nodes.Len()
}

func (s *Simulator[T]) Cycles() int {
	return s.cycles
}

func (s *Simulator[T]) IsStarted() bool {
	return s.cycles > 0
}

// Float64 returns a random value in [0, 1).
func (s *Simulator[T]) Float64() float64 {
	return s.random.Float64()
}

// Intn returns a random value in [0, max). It panics if max <= 0.
func (s *Simulator[T]) Intn(max int) int {
	return s.random.Intn(max)
}

// RandomNodes selects up to count distinct nodes from the registry.
func (s *Simulator[T]) RandomNodes(count int) []*Node[T] {
	return s.RandomNodesFrom(s.nodes.View(), count)
}

// RandomNodesFunc selects up to count distinct nodes satisfying predicate from
// the registry.
func (s *Simulator[T]) RandomNodesFunc(count int, predicate func(*Node[T]) bool) ([]*Node[T], error) {
	selected, e := sampling.SampleFunc[*Node[T]](s.nodes.View(), count, s.random, predicate)
	if e != nil {
		return nil, e
	}
	s.logShortcut(s.nodes.Len(), count, len(selected))
	return selected, nil
}

// RandomNodesFrom selects up to count distinct nodes from source.
func (s *Simulator[T]) RandomNodesFrom(source sampling.Collection[*Node[T]], count int) []*Node[T] {
	selected := sampling.Sample[*Node[T]](source, count, s.random)
	s.logShortcut(source.Len(), count, len(selected))
	return selected
}

func (s *Simulator[T]) logShortcut(available int, count int, selected int) {
	if count >= available {
		s.logger.LogSampleShortcut(count, available, selected)
	}
}

// RunCycle makes every infected node send its message to its neighbors.
// Call it in a loop with whatever stop condition fits, e.g. a fixed number
// of cycles or until AllNodesInfected.
//
// The first call builds the initial overlay. If there are not more nodes than
// the max neighborhood size, it either fails with ErrNetworkTooSmall or clamps
// the neighborhood bounds, depending on the configured policy.
func (s *Simulator[T]) RunCycle() (CycleSummary, error) {
	if s.cycles == 0 {
		if e := s.start(); e != nil {
			return CycleSummary{}, e
		}
	}

	s.cycles++
	s.logger.LogCycleStart(s.cycles)

	tracker := trackCycle(s.nodes.View())
	summary := CycleSummary{
		RunID:    s.runID.String(),
		Cycle:    s.cycles,
		Sent:     tracker.Sent(),
		Infected: s.InfectedNodesCount(),
		Nodes:    s.nodes.Len(),
	}
	if tracker.Sent() > 0 {
		s.logger.LogCycleSummary(summary.Cycle, summary.Sent, summary.Infected, summary.Nodes)
	} else {
		summary.Reason = tracker.NoMessageSentReason()
		s.logger.LogNoMessageSent(summary.Cycle, summary.Nodes, summary.Reason)
	}

	if s.events != nil {
		s.events.Publish(summary)
	}
	return summary, nil
}

func (s *Simulator[T]) start() error {
	count := s.nodes.Len()
	if count <= s.config.MaxNeighbors() {
		if s.config.Policy() == config.FailOnSmallNetwork {
			return fmt.Errorf(
				"%w: %d nodes for at most %d neighbors",
				ErrNetworkTooSmall, count, s.config.MaxNeighbors())
		}
		s.logger.LogClamp(count, s.config.MaxNeighbors())
		s.config = s.config.ClampedTo(count)
	}

	edges := 0
	s.nodes.Each(func(node *Node[T]) bool {
		node.AddRandomNeighbors()
		edges += node.NeighborhoodSize()
		return true
	})
	s.logger.LogOverlayBuilt(count, edges)
	return nil
}
