package ripple

import (
	"errors"
	"fmt"
	"io"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrNilWriter indicates that a nil writer was provided to ExportDOT.
var ErrNilWriter = errors.New("ripple: nil writer")

// GraphNode is any node in the dataflow graph, independent of its value
// type. Every *Node[T] implements it.
type GraphNode interface {
	nodeID() uint64
	nodeLabel() string
	downstream() []GraphNode
}

func (n *Node[T]) nodeID() uint64 { return n.id }

func (n *Node[T]) nodeLabel() string {
	if n.name != "" {
		return n.name
	}
	return fmt.Sprintf("node%d", n.id)
}

func (n *Node[T]) downstream() []GraphNode { return n.edges }

// ExportDOT renders the structural graph reachable from roots in
// Graphviz DOT format. Edges cover both dependent-wired combinators
// (Combine, Map) and listener-wired ones (Merge, Filter, Unique, Until,
// Delay, Debounce); external listeners are not shown.
func ExportDOT(w io.Writer, roots ...GraphNode) error {
	if w == nil {
		return ErrNilWriter
	}

	visited := mapset.NewThreadUnsafeSet[uint64]()
	var nodes []GraphNode
	var edges [][2]GraphNode

	var walk func(gn GraphNode)
	walk = func(gn GraphNode) {
		if !visited.Add(gn.nodeID()) {
			return
		}
		nodes = append(nodes, gn)
		for _, to := range gn.downstream() {
			edges = append(edges, [2]GraphNode{gn, to})
			walk(to)
		}
	}
	for _, root := range roots {
		walk(root)
	}

	if _, err := fmt.Fprintln(w, "digraph ripple {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    rankdir=LR;"); err != nil {
		return err
	}
	for _, gn := range nodes {
		if _, err := fmt.Fprintf(w, "    n%d [label=%q];\n", gn.nodeID(), gn.nodeLabel()); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "    n%d -> n%d;\n", e[0].nodeID(), e[1].nodeID()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
