package ripple

import "context"

// EventSource is the registration point an event-driven host supplies:
// it calls every added listener once per external event of interest.
type EventSource[T comparable] interface {
	AddListener(fn func(T))
}

// FromEvent builds a node that carries each event delivered by src.
// Every event runs one full write cycle.
func FromEvent[T comparable](src EventSource[T]) *Node[T] {
	out := New[T]()
	src.AddListener(out.Write)
	return out
}

// ChanSource adapts a receive channel to an EventSource. Register
// listeners first, then call Run from the goroutine that owns the
// graph; Run pumps events until the channel closes or ctx is done.
type ChanSource[T comparable] struct {
	ch        <-chan T
	listeners []func(T)
}

func NewChanSource[T comparable](ch <-chan T) *ChanSource[T] {
	return &ChanSource[T]{ch: ch}
}

func (s *ChanSource[T]) AddListener(fn func(T)) {
	s.listeners = append(s.listeners, fn)
}

func (s *ChanSource[T]) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case v, ok := <-s.ch:
			if !ok {
				return nil
			}
			for _, fn := range s.listeners {
				fn(v)
			}
		}
	}
}
