package gossip

import (
	"gossip-simulation/impl/collections"
)

const (
	ReasonNoInfectedNode     = "no infected node exists"
	ReasonEmptyNeighborhoods = "infected nodes' neighborhoods are empty"
)

// CycleTracker counts what happened while the infected nodes sent their
// messages in one cycle.
type CycleTracker struct {
	sent          int
	infected      int
	withNeighbors int
}

// trackCycle walks nodes once, making each node infected at the time of its
// turn send its message. Nodes infected earlier in the same walk take part.
func trackCycle[T any](nodes collections.ListView[*Node[T]]) *CycleTracker {
	t := &CycleTracker{}
	nodes.Each(func(node *Node[T]) bool {
		if !node.IsInfected() {
			return true
		}
		t.infected++
		if node.HasNeighbors() {
			t.withNeighbors++
		}
		if node.SendMessage() {
			t.sent++
		}
		return true
	})
	return t
}

// Sent is the number of nodes that sent their message.
func (t *CycleTracker) Sent() int {
	return t.sent
}

func (t *CycleTracker) Infected() int {
	return t.infected
}

func (t *CycleTracker) NodesWithNeighbors() int {
	return t.withNeighbors
}

// NoMessageSentReason explains an empty cycle. An infected node with
// neighbors always sends, so the two reasons never apply together.
func (t *CycleTracker) NoMessageSentReason() string {
	switch {
	case t.sent > 0:
		return ""
	case t.infected == 0:
		return ReasonNoInfectedNode
	default:
		return ReasonEmptyNeighborhoods
	}
}
