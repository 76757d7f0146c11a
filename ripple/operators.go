package ripple

// Merge builds a node carrying every value emitted by any source. Each
// forwarded value runs its own full update+flush cycle on the merged
// node, so two sources firing inside the same external call stack
// produce two separate downstream cycles rather than one atomic one.
// This matches the per-source wiring: merge listens, it does not join
// the dependent graph of its sources.
func Merge[T comparable](sources ...*Node[T]) *Node[T] {
	out := New[T]()
	for _, src := range sources {
		src.pipe(out, out.Write)
	}
	return out
}

// Filter builds a node carrying only the values for which pred holds.
// Each pass-through is an independent write cycle.
func (n *Node[T]) Filter(pred func(T) bool) *Node[T] {
	out := New[T]()
	n.pipe(out, func(v T) {
		if pred(v) {
			out.Write(v)
		}
	})
	return out
}

// Unique builds a node that drops consecutive duplicates. The baseline
// is the source's value at construction time: the derived node starts
// with it, and the first emission equal to it is suppressed.
func (n *Node[T]) Unique() *Node[T] {
	out := New[T]()
	last, have := n.Read()
	if have {
		out.value = last
		out.started = true
	}
	n.pipe(out, func(v T) {
		if have && v == last {
			return
		}
		last, have = v, true
		out.Write(v)
	})
	return out
}

// Until gates the source on a boolean condition node. While the
// condition reads false, source emissions are held back (only the fact
// that one happened is latched, not the value); when the condition
// becomes true the source's current value is forwarded once, and
// subsequent source emissions pass through until the condition turns
// false again. An unstarted condition reads as false.
func (n *Node[T]) Until(cond *Node[bool]) *Node[T] {
	out := New[T]()
	open, _ := cond.Read()
	pending := !open
	if !pending {
		if v, ok := n.Read(); ok {
			out.value = v
			out.started = true
		}
	}
	cond.pipe(out, func(c bool) {
		if c && pending {
			pending = false
			if v, ok := n.Read(); ok {
				out.Write(v)
			}
		}
	})
	n.pipe(out, func(v T) {
		if c, _ := cond.Read(); !c {
			pending = true
			return
		}
		out.Write(v)
	})
	return out
}
