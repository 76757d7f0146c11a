package ripple

// Combine1 builds a node whose value is f applied to the latest value
// of arg0. The derived node starts with a value only if arg0 already
// has one.
func Combine1[T0, O comparable](
	arg0 *Node[T0],
	f func(T0) O,
) *Node[O] {
	out := New[O]()

	if v, ok := arg0.Read(); ok {
		out.value = f(v)
		out.started = true
	}

	arg0.addDependent(out, dependentEntry[T0]{
		onUpdate: func(v T0) {
			out.update(f(v))
		},
		onFlush: out.flush,
	})
	return out
}

// Combine2 builds a node recomputed from the latest values of both
// sources. Each source keeps a cached slot on the derived node; the
// node recomputes as soon as every slot has been filled at least once.
// Dependent registration follows argument order, so propagation through
// the derived node is deterministic.
func Combine2[T0, T1, O comparable](
	arg0 *Node[T0],
	arg1 *Node[T1],
	f func(T0, T1) O,
) *Node[O] {
	out := New[O]()

	var (
		cached0 T0
		cached1 T1
		has0    bool
		has1    bool
	)
	if v, ok := arg0.Read(); ok {
		cached0, has0 = v, true
	}
	if v, ok := arg1.Read(); ok {
		cached1, has1 = v, true
	}
	if has0 && has1 {
		out.value = f(cached0, cached1)
		out.started = true
	}

	recompute := func() {
		if has0 && has1 {
			out.update(f(cached0, cached1))
		}
	}
	arg0.addDependent(out, dependentEntry[T0]{
		onUpdate: func(v T0) {
			cached0, has0 = v, true
			recompute()
		},
		onFlush: out.flush,
	})
	arg1.addDependent(out, dependentEntry[T1]{
		onUpdate: func(v T1) {
			cached1, has1 = v, true
			recompute()
		},
		onFlush: out.flush,
	})
	return out
}

// Combine3 is Combine2 over three sources.
func Combine3[T0, T1, T2, O comparable](
	arg0 *Node[T0],
	arg1 *Node[T1],
	arg2 *Node[T2],
	f func(T0, T1, T2) O,
) *Node[O] {
	out := New[O]()

	var (
		cached0 T0
		cached1 T1
		cached2 T2
		has0    bool
		has1    bool
		has2    bool
	)
	if v, ok := arg0.Read(); ok {
		cached0, has0 = v, true
	}
	if v, ok := arg1.Read(); ok {
		cached1, has1 = v, true
	}
	if v, ok := arg2.Read(); ok {
		cached2, has2 = v, true
	}
	if has0 && has1 && has2 {
		out.value = f(cached0, cached1, cached2)
		out.started = true
	}

	recompute := func() {
		if has0 && has1 && has2 {
			out.update(f(cached0, cached1, cached2))
		}
	}
	arg0.addDependent(out, dependentEntry[T0]{
		onUpdate: func(v T0) {
			cached0, has0 = v, true
			recompute()
		},
		onFlush: out.flush,
	})
	arg1.addDependent(out, dependentEntry[T1]{
		onUpdate: func(v T1) {
			cached1, has1 = v, true
			recompute()
		},
		onFlush: out.flush,
	})
	arg2.addDependent(out, dependentEntry[T2]{
		onUpdate: func(v T2) {
			cached2, has2 = v, true
			recompute()
		},
		onFlush: out.flush,
	})
	return out
}

// CombineAll is the homogeneous-list form: every source carries the
// same value type and f receives one slice with the latest value from
// each, in source order. The slice is reused between calls; f must not
// retain it.
func CombineAll[T, O comparable](
	f func([]T) O,
	sources ...*Node[T],
) *Node[O] {
	out := New[O]()

	cached := make([]T, len(sources))
	has := make([]bool, len(sources))
	haveAll := func() bool {
		for _, h := range has {
			if !h {
				return false
			}
		}
		return true
	}

	for i, src := range sources {
		if v, ok := src.Read(); ok {
			cached[i], has[i] = v, true
		}
	}
	if len(sources) > 0 && haveAll() {
		out.value = f(cached)
		out.started = true
	}

	for i, src := range sources {
		i := i
		src.addDependent(out, dependentEntry[T]{
			onUpdate: func(v T) {
				cached[i], has[i] = v, true
				if haveAll() {
					out.update(f(cached))
				}
			},
			onFlush: out.flush,
		})
	}
	return out
}

// Map builds a node holding f of the source's value. It is Combine1
// under its conventional name.
func Map[T, O comparable](src *Node[T], f func(T) O) *Node[O] {
	return Combine1(src, f)
}
