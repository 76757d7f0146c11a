package ripple

// Subscription is the handle returned by Subscribe. Cancel removes the
// listener; cancelling during an active flush marks the entry dead so
// the remainder of the pass skips it, and the entry is pruned once the
// pass completes.
type Subscription struct {
	cancel func()
}

func (s *Subscription) Cancel() {
	s.cancel()
}

// Subscribe appends a listener. Listeners fire during the flush pass
// only, in registration order, and therefore observe only states that
// existed at a completed flush boundary.
func (n *Node[T]) Subscribe(fn func(T)) *Subscription {
	e := &listenerEntry[T]{fn: fn}
	n.listeners = append(n.listeners, e)
	return &Subscription{cancel: func() {
		if e.dead {
			return
		}
		e.dead = true
		n.deadCount++
		n.prune()
	}}
}

// SubscribeNow is Subscribe plus an immediate synchronous call with the
// current value when the node has one. The immediate call happens
// outside any flush pass and does not touch the changed flag.
func (n *Node[T]) SubscribeNow(fn func(T)) *Subscription {
	sub := n.Subscribe(fn)
	if n.started {
		fn(n.value)
	}
	return sub
}

func (n *Node[T]) prune() {
	if n.notifying > 0 || n.deadCount == 0 {
		return
	}
	live := n.listeners[:0]
	for _, l := range n.listeners {
		if !l.dead {
			live = append(live, l)
		}
	}
	n.listeners = live
	n.deadCount = 0
}
