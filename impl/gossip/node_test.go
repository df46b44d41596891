package gossip

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewNode_nilSimulator(t *testing.T) {
	_, e := NewNode[string](nil)
	assert.ErrorIs(t, e, ErrNilSimulator)

	_, e = NewNodeWithID[string](nil, 3)
	assert.ErrorIs(t, e, ErrNilSimulator)
}

func TestNewNode_registersWithIncreasingIDs(t *testing.T) {
	sim := makeSimulator(t, 1, 2, 1)

	nodes := makeNodes(t, sim, 3)

	assert.Equal(t, 3, sim.NodesCount())
	for i, n := range nodes {
		assert.Equal(t, int64(i), n.ID())
		assert.Same(t, n, sim.Nodes().At(i))
		assert.Same(t, sim, n.Simulator())
	}
}

func TestNewNodeWithID_keepsExplicitID(t *testing.T) {
	sim := makeSimulator(t, 1, 2, 1)

	n, e := NewNodeWithID(sim, 42)

	require.NoError(t, e)
	assert.Equal(t, int64(42), n.ID())
	assert.Equal(t, 1, sim.NodesCount())
}

func TestAddNeighbor_rejectsSelfAndNil(t *testing.T) {
	sim := makeSimulator(t, 1, 2, 1)
	n := makeNodes(t, sim, 1)[0]

	assert.False(t, n.AddNeighbor(n))
	assert.False(t, n.AddNeighbor(nil))
	assert.Equal(t, 0, n.NeighborhoodSize())
	assert.False(t, n.HasNeighbors())
}

func TestAddNeighbor_reportsNewInsertions(t *testing.T) {
	sim := makeSimulator(t, 1, 2, 1)
	nodes := makeNodes(t, sim, 2)

	assert.True(t, nodes[0].AddNeighbor(nodes[1]))
	assert.False(t, nodes[0].AddNeighbor(nodes[1]))
	assert.Equal(t, 1, nodes[0].NeighborhoodSize())
	assert.Equal(t, 0, nodes[1].NeighborhoodSize(), "edges are not symmetric")
}

func TestAddNeighbors_selfIsNotGrowth(t *testing.T) {
	sim := makeSimulator(t, 1, 2, 1)
	nodes := makeNodes(t, sim, 3)
	n := nodes[0]

	assert.False(t, n.AddNeighbors([]*Node[string]{n}))
	assert.True(t, n.AddNeighbors([]*Node[string]{n, nodes[1]}))
	assert.False(t, n.AddNeighbors([]*Node[string]{nodes[1], n}))
	assert.True(t, n.AddNeighbors(nodes))
	assert.Equal(t, []int64{1, 2}, neighborIDs(n))
}

func TestSendMessage_notInfectedIsNoop(t *testing.T) {
	sim := makeSimulator(t, 1, 2, 1)
	nodes := makeNodes(t, sim, 2)
	nodes[0].AddNeighbor(nodes[1])

	assert.False(t, nodes[0].SendMessage())

	_, ok := nodes[0].Message()
	assert.False(t, ok)
	assert.False(t, nodes[0].IsInfected())
	assert.Equal(t, []int64{1}, neighborIDs(nodes[0]))
	assert.False(t, nodes[1].IsInfected())
	assert.Equal(t, 0, nodes[1].NeighborhoodSize())
}

func TestSendMessage_noNeighbors(t *testing.T) {
	sim := makeSimulator(t, 1, 2, 1)
	n := makeNodes(t, sim, 1)[0]
	n.SetMessage("X")

	assert.False(t, n.SendMessage())
	assert.True(t, n.IsInfected())
}

func TestSendMessage_fewerNeighborsThanFanoutReachesAll(t *testing.T) {
	sim := makeSimulator(t, 3, 4, 1)
	nodes := makeNodes(t, sim, 4)
	nodes[0].AddNeighbors([]*Node[string]{nodes[1], nodes[2]})
	nodes[0].SetMessage("X")

	assert.True(t, nodes[0].SendMessage())

	for _, n := range nodes[1:3] {
		msg, ok := n.Message()
		assert.True(t, ok)
		assert.Equal(t, "X", msg)
		assert.True(t, n.Neighbors().Contains(nodes[0]))
	}
	assert.False(t, nodes[3].IsInfected())
}

func TestSendMessage_fanoutCapRespected(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		sim := makeSimulator(t, 2, 8, seed)
		nodes := makeNodes(t, sim, 9)
		sender := nodes[0]
		sender.AddNeighbors(nodes[1:7])
		sender.SetMessage("X")

		require.True(t, sender.SendMessage())

		contacted := 0
		for _, n := range nodes[1:] {
			if n.Neighbors().Contains(sender) {
				contacted++
			}
		}
		assert.GreaterOrEqual(t, contacted, 1)
		assert.LessOrEqual(t, contacted, 2)
		assert.Equal(t, 6, sender.NeighborhoodSize())
	}
}

func TestReceiveMessage_acceptedOverwrites(t *testing.T) {
	sim := makeSimulator(t, 1, 2, 1)
	nodes := makeNodes(t, sim, 2)
	nodes[1].SetMessage("old")

	nodes[1].ReceiveMessage(nodes[0], "new")

	msg, ok := nodes[1].Message()
	assert.True(t, ok)
	assert.Equal(t, "new", msg)
	assert.Equal(t, []int64{0}, neighborIDs(nodes[1]))
}

func TestReceiveMessage_rejectedStillLinksSource(t *testing.T) {
	sim := makeSimulator(t, 1, 2, 1)
	nodes := makeNodes(t, sim, 2)
	require.NoError(t, nodes[1].SetAcceptance(func(*Node[string], string) bool { return false }))

	nodes[1].ReceiveMessage(nodes[0], "X")

	assert.False(t, nodes[1].IsInfected())
	assert.True(t, nodes[1].Neighbors().Contains(nodes[0]))
}

func TestReceiveMessage_rejectionNeverClearsMessage(t *testing.T) {
	sim := makeSimulator(t, 1, 2, 1)
	nodes := makeNodes(t, sim, 2)
	nodes[1].SetMessage("old")
	require.NoError(t, nodes[1].SetAcceptance(func(source *Node[string], payload string) bool {
		return payload != "bad"
	}))

	nodes[1].ReceiveMessage(nodes[0], "bad")

	msg, ok := nodes[1].Message()
	assert.True(t, ok)
	assert.Equal(t, "old", msg)
}

func TestSetAcceptance_nil(t *testing.T) {
	sim := makeSimulator(t, 1, 2, 1)
	n := makeNodes(t, sim, 1)[0]

	assert.ErrorIs(t, n.SetAcceptance(nil), ErrNilAcceptance)
}

func TestAddRandomNeighbors_withinBounds(t *testing.T) {
	sim := makeSimulator(t, 2, 5, 11)
	nodes := makeNodes(t, sim, 12)

	for _, n := range nodes {
		n.AddRandomNeighbors()
		assert.LessOrEqual(t, n.NeighborhoodSize(), 5)
		assert.False(t, n.Neighbors().Contains(n))
	}
}

func TestString_padsIDToNodeCount(t *testing.T) {
	sim := makeSimulator(t, 1, 2, 1)
	nodes := makeNodes(t, sim, 10)
	nodes[3].SetMessage("X")

	assert.Equal(t, "GossipNode  3 🐞", nodes[3].String())
	assert.Equal(t, "GossipNode  4 💚", nodes[4].String())
	assert.Equal(t, "GossipNode <nil>", (*Node[string])(nil).String())
}
