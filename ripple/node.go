// Package ripple is a push-based reactive stream library. A Node holds a
// time-varying value; combinators wire new nodes as dependents of their
// sources, forming a directed acyclic graph. A Write propagates in two
// full passes: an update pass that recomputes every reachable node, then
// a flush pass that notifies listeners. Because no listener fires until
// the whole subgraph has updated, a node with several converging inputs
// emits exactly once per external write, never an intermediate value.
//
// The graph is acyclic by construction: every combinator wires a brand
// new node to nodes that already exist, so no sequence of calls can
// close a cycle.
//
// Nodes are not safe for concurrent use. All writes, including those
// fired by a Clock or EventSource, must happen on a single goroutine.
package ripple

import "sync/atomic"

var nodeIDCounter uint64

type listenerEntry[T comparable] struct {
	fn   func(T)
	dead bool
}

// dependentEntry is a structural edge from a source node to a derived
// node. onUpdate runs during the update pass and may update other
// nodes; it must never flush. onFlush cascades the flush pass.
type dependentEntry[T comparable] struct {
	onUpdate func(T)
	onFlush  func()
}

// Node is one vertex of the dataflow graph.
type Node[T comparable] struct {
	id   uint64
	name string

	value   T
	started bool
	changed bool

	listeners  []*listenerEntry[T]
	deadCount  int
	notifying  int
	dependents []dependentEntry[T]
	edges      []GraphNode
}

// New creates a node with no value. Read reports ok=false until the
// first Write.
func New[T comparable]() *Node[T] {
	return &Node[T]{id: atomic.AddUint64(&nodeIDCounter, 1)}
}

// From creates a node already holding v.
func From[T comparable](v T) *Node[T] {
	n := New[T]()
	n.value = v
	n.started = true
	return n
}

// Named sets a diagnostic label used by Log and Export.
func (n *Node[T]) Named(name string) *Node[T] {
	n.name = name
	return n
}

// Read returns the current value. ok is false if the node has never
// held a value.
func (n *Node[T]) Read() (v T, ok bool) {
	return n.value, n.started
}

// Write sets the value and propagates it through the graph before
// returning: first the update pass over every dependent, depth first in
// registration order, then the flush pass in the same order. A panic in
// a combinator function escapes from Write and leaves nodes that were
// already reached holding their new values.
func (n *Node[T]) Write(v T) {
	n.update(v)
	n.flush()
}

// update is the first propagation pass. The entire reachable subgraph
// updates before any flush begins; that separation is what makes
// convergent graphs glitch-free.
func (n *Node[T]) update(v T) {
	n.value = v
	n.started = true
	n.changed = true
	for _, d := range n.dependents {
		d.onUpdate(v)
	}
}

// flush is the second propagation pass. The changed flag makes it
// idempotent: a node that already flushed this cycle ignores further
// flush calls until its next update.
func (n *Node[T]) flush() {
	if !n.changed {
		return
	}
	n.changed = false
	if n.started {
		n.notifying++
		for _, l := range n.listeners {
			if !l.dead {
				l.fn(n.value)
			}
		}
		n.notifying--
		n.prune()
	}
	for _, d := range n.dependents {
		d.onFlush()
	}
}

// addDependent wires a structural edge to a derived node.
func (n *Node[T]) addDependent(to GraphNode, d dependentEntry[T]) {
	n.dependents = append(n.dependents, d)
	n.edges = append(n.edges, to)
}

// pipe registers an internal forwarding listener and records the edge
// for Export. Listener-wired combinators (Merge, Filter, Unique, Until,
// Delay, Debounce) forward through independent Write cycles on the
// derived node rather than through the dependent mechanism.
func (n *Node[T]) pipe(to GraphNode, fn func(T)) {
	n.listeners = append(n.listeners, &listenerEntry[T]{fn: fn})
	n.edges = append(n.edges, to)
}
