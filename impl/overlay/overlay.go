// Package overlay inspects the neighbor graph of a gossip simulation.
package overlay

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
	"gonum.org/v1/gonum/stat"
	"gossip-simulation/impl/gossip"
)

// Stats describes the shape of the overlay at some point of a run.
type Stats struct {
	Nodes int
	Edges int

	MinDegree    int
	MaxDegree    int
	MeanDegree   float64
	StdDevDegree float64

	// Reachable counts the nodes an infected node can reach by following
	// neighbor links, infected nodes included.
	Reachable int
	// Components is the number of strongly connected components.
	Components int
}

// Snapshot builds a directed graph with an edge from every node to each of
// its neighbors. Graph ids are registry positions, not node ids, since node
// ids are not guaranteed to be unique.
func Snapshot[T any](sim *gossip.Simulator[T]) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	positions := make(map[*gossip.Node[T]]int64, sim.NodesCount())

	sim.Nodes().Each(func(node *gossip.Node[T]) bool {
		position := int64(len(positions))
		positions[node] = position
		g.AddNode(simple.Node(position))
		return true
	})
	sim.Nodes().Each(func(node *gossip.Node[T]) bool {
		from := positions[node]
		node.Neighbors().Each(func(neighbor *gossip.Node[T]) bool {
			if to, ok := positions[neighbor]; ok {
				g.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
			}
			return true
		})
		return true
	})
	return g
}

// Analyze computes Stats for the current overlay of sim.
func Analyze[T any](sim *gossip.Simulator[T]) Stats {
	g := Snapshot(sim)
	stats := Stats{
		Nodes: g.Nodes().Len(),
		Edges: g.Edges().Len(),
	}
	if stats.Nodes == 0 {
		return stats
	}

	degrees := make([]float64, 0, stats.Nodes)
	sim.Nodes().Each(func(node *gossip.Node[T]) bool {
		degrees = append(degrees, float64(node.NeighborhoodSize()))
		return true
	})
	stats.MinDegree = int(floats.Min(degrees))
	stats.MaxDegree = int(floats.Max(degrees))
	stats.MeanDegree, stats.StdDevDegree = stat.MeanStdDev(degrees, nil)

	stats.Reachable = reachableFromInfected(sim, g)
	stats.Components = len(topo.TarjanSCC(g))
	return stats
}

func reachableFromInfected[T any](sim *gossip.Simulator[T], g graph.Directed) int {
	reached := make(map[int64]struct{})
	walker := traverse.BreadthFirst{
		Visit: func(n graph.Node) {
			reached[n.ID()] = struct{}{}
		},
	}

	var position int64
	sim.Nodes().Each(func(node *gossip.Node[T]) bool {
		if node.IsInfected() {
			walker.Walk(g, g.Node(position), nil)
		}
		position++
		return true
	})
	return len(reached)
}
