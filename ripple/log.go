package ripple

import "log/slog"

// Log subscribes a diagnostic listener that records every flushed value
// on slog.Default, tagged with name. It returns the node for chaining.
func (n *Node[T]) Log(name string) *Node[T] {
	return n.LogTo(slog.Default(), name)
}

// LogTo is Log with an explicit logger.
func (n *Node[T]) LogTo(logger *slog.Logger, name string) *Node[T] {
	n.Subscribe(func(v T) {
		logger.Info("stream", "name", name, "value", v)
	})
	return n
}
