package gossip

import (
	"fmt"
	"gossip-simulation/impl/collections"
	"strconv"
)

// AcceptFunc decides whether a node stores a payload received from source.
type AcceptFunc[T any] func(source *Node[T], payload T) bool

// AcceptAll stores every received payload.
func AcceptAll[T any](*Node[T], T) bool {
	return true
}

// Node is a gossip participant. It becomes infected once it stores a message
// and stays infected for the rest of the run.
type Node[T any] struct {
	id        int64
	simulator *Simulator[T]
	neighbors *collections.Set[*Node[T]]
	message   T
	infected  bool
	accept    AcceptFunc[T]
}

// NewNode creates a node with the next id issued by simulator and registers it.
func NewNode[T any](simulator *Simulator[T]) (*Node[T], error) {
	if simulator == nil {
		return nil, ErrNilSimulator
	}
	return NewNodeWithID(simulator, simulator.nextNodeID())
}

// NewNodeWithID creates a node with an explicit id and registers it. Ids are
// not checked for uniqueness.
func NewNodeWithID[T any](simulator *Simulator[T], id int64) (*Node[T], error) {
	if simulator == nil {
		return nil, ErrNilSimulator
	}

	n := &Node[T]{
		id:        id,
		simulator: simulator,
		neighbors: collections.NewSet[*Node[T]](),
		accept:    AcceptAll[T],
	}
	simulator.addNode(n)
	return n, nil
}

func (n *Node[T]) ID() int64 {
	return n.id
}

func (n *Node[T]) Simulator() *Simulator[T] {
	return n.simulator
}

// SetAcceptance replaces the function deciding which received payloads are
// stored. Already stored messages are kept either way.
func (n *Node[T]) SetAcceptance(accept AcceptFunc[T]) error {
	if accept == nil {
		return ErrNilAcceptance
	}
	n.accept = accept
	return nil
}

// SetMessage stores a message to be disseminated, infecting the node.
func (n *Node[T]) SetMessage(message T) {
	n.message = message
	n.infected = true
}

// Message returns the latest stored message and whether there is one.
func (n *Node[T]) Message() (T, bool) {
	return n.message, n.infected
}

func (n *Node[T]) IsInfected() bool {
	return n.infected
}

// SendMessage pushes the stored message to fanout randomly selected neighbors,
// or to all of them when there are fewer than fanout. It returns false, with
// no side effects, when the node has no message or no neighbors.
func (n *Node[T]) SendMessage() bool {
	if !n.infected {
		n.simulator.logger.LogNothingToSend(n.String())
		return false
	}
	if n.neighbors.Empty() {
		n.simulator.logger.LogNoNeighbors(n.String())
		return false
	}

	fanout := n.simulator.config.Fanout()
	sendToAll := n.neighbors.Len() < fanout
	var selected []*Node[T]
	if sendToAll {
		selected = n.neighbors.Values()
	} else {
		selected = n.simulator.RandomNodesFrom(n.neighbors.View(), fanout)
	}

	n.simulator.logger.LogSend(n.String(), len(selected), sendToAll, n.neighbors.Len())
	for _, recipient := range selected {
		recipient.ReceiveMessage(n, n.message)
	}
	return true
}

// ReceiveMessage makes source a neighbor and stores data if the node accepts it.
func (n *Node[T]) ReceiveMessage(source *Node[T], data T) {
	n.AddNeighbor(source)

	if !n.accept(source, data) {
		n.simulator.logger.LogRejected(n.String(), source.String())
		return
	}
	n.message = data
	n.infected = true
	n.simulator.logger.LogReceive(n.String(), source.String())
}

// AddNeighbor reports whether neighbor was added. A node is never its own
// neighbor.
func (n *Node[T]) AddNeighbor(neighbor *Node[T]) bool {
	if neighbor == nil || neighbor == n {
		return false
	}
	return n.neighbors.Add(neighbor)
}

// AddNeighbors reports whether the neighborhood grew.
func (n *Node[T]) AddNeighbors(neighbors []*Node[T]) bool {
	grew := false
	for _, neighbor := range neighbors {
		if n.AddNeighbor(neighbor) {
			grew = true
		}
	}
	return grew
}

// AddRandomNeighbors links the node to a random number of nodes, between the
// configured min and max neighbors, drawn from the whole registry.
func (n *Node[T]) AddRandomNeighbors() bool {
	cfg := n.simulator.config
	size := n.simulator.Intn(cfg.MaxNeighbors()-cfg.MinNeighbors()+1) + cfg.MinNeighbors()
	return n.AddNeighbors(n.simulator.RandomNodes(size))
}

// Neighbors returns a read-only view of the neighborhood.
func (n *Node[T]) Neighbors() collections.SetView[*Node[T]] {
	return n.neighbors.View()
}

func (n *Node[T]) NeighborhoodSize() int {
	return n.neighbors.Len()
}

func (n *Node[T]) HasNeighbors() bool {
	return !n.neighbors.Empty()
}

func (n *Node[T]) String() string {
	if n == nil {
		return "GossipNode <nil>"
	}
	marker := " 💚"
	if n.infected {
		marker = " 🐞"
	}
	width := len(strconv.Itoa(n.simulator.NodesCount()))
	return fmt.Sprintf("GossipNode %*d%s", width, n.id, marker)
}
