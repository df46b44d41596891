package gossip

import (
	"github.com/stretchr/testify/require"
	"gossip-simulation/config"
	"gossip-simulation/impl/randomness"
	"testing"
)

// zeroRander always samples 0, so every draw picks the first candidate.
type zeroRander struct{}

func (zeroRander) Rand() float64 {
	return 0
}

func makeSimulator(t *testing.T, fanout int, maxNeighbors int, seed uint64, opts ...config.Option) *Simulator[string] {
	cfg, e := config.New(fanout, maxNeighbors, opts...)
	require.NoError(t, e)
	sim, e := NewSimulator[string](cfg, randomness.NewUniform(seed))
	require.NoError(t, e)
	return sim
}

// makeStaticSimulator never adds random neighbors, so tests can wire the
// overlay by hand.
func makeStaticSimulator(t *testing.T, fanout int, maxNeighbors int, simOpts ...Option) *Simulator[string] {
	cfg, e := config.New(fanout, maxNeighbors, config.WithMinNeighbors(0))
	require.NoError(t, e)
	sim, e := NewSimulator[string](cfg, randomness.NewSource(zeroRander{}), simOpts...)
	require.NoError(t, e)
	return sim
}

func makeNodes(t *testing.T, sim *Simulator[string], count int) []*Node[string] {
	nodes := make([]*Node[string], count)
	for i := range nodes {
		n, e := NewNode(sim)
		require.NoError(t, e)
		nodes[i] = n
	}
	return nodes
}

func neighborIDs(n *Node[string]) []int64 {
	ids := make([]int64, 0, n.NeighborhoodSize())
	n.Neighbors().Each(func(neighbor *Node[string]) bool {
		ids = append(ids, neighbor.ID())
		return true
	})
	return ids
}
