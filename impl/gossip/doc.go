// Package gossip simulates epidemic dissemination of a message over a
// randomized overlay of in-process nodes.
//
// A Simulator owns the node registry. Nodes register themselves when created,
// one or more of them is seeded with a message, and every RunCycle makes each
// infected node push its message to up to fanout neighbors. The overlay is
// built lazily on the first cycle and only grows afterwards: receiving a
// message makes the sender a neighbor of the receiver.
//
// Everything runs on the caller's goroutine. A Simulator and its nodes must
// not be used concurrently.
package gossip
