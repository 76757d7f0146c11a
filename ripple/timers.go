package ripple

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Delay builds a node that receives each source value d after it was
// emitted. The clock is an explicit capability so tests can drive
// propagation deterministically with clock.NewMock. Values are not
// reordered relative to each other only if the host clock fires
// one-shot timers in schedule order.
func (n *Node[T]) Delay(clk clock.Clock, d time.Duration) *Node[T] {
	out := New[T]()
	n.pipe(out, func(v T) {
		clk.AfterFunc(d, func() {
			out.Write(v)
		})
	})
	return out
}

// Debounce forwards a value only once the source has been quiet for d.
// Consecutive duplicates are dropped before debouncing, and every new
// value cancels the previously scheduled emission.
func (n *Node[T]) Debounce(clk clock.Clock, d time.Duration) *Node[T] {
	out := New[T]()
	var scheduled *clock.Timer
	n.Unique().pipe(out, func(v T) {
		if scheduled != nil {
			scheduled.Stop()
		}
		scheduled = clk.AfterFunc(d, func() {
			out.Write(v)
		})
	})
	return out
}

// Interval builds a node that counts ticks of the clock, writing 1, 2,
// 3, ... every d. The returned stop function cancels future ticks.
func Interval(clk clock.Clock, d time.Duration) (*Node[int], func()) {
	out := New[int]()
	tick := 0
	stopped := false
	var timer *clock.Timer
	var fire func()
	fire = func() {
		if stopped {
			return
		}
		tick++
		out.Write(tick)
		if !stopped {
			timer = clk.AfterFunc(d, fire)
		}
	}
	timer = clk.AfterFunc(d, fire)
	stop := func() {
		stopped = true
		if timer != nil {
			timer.Stop()
		}
	}
	return out, stop
}
