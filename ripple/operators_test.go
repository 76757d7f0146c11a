package ripple_test

import (
	"testing"

	"github.com/delaneyj/streamparty/ripple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeForwardsAllSources(t *testing.T) {
	a := ripple.New[int]()
	b := ripple.New[int]()
	m := ripple.Merge(a, b)

	var got []int
	m.Subscribe(func(v int) {
		got = append(got, v)
	})

	a.Write(1)
	b.Write(2)
	a.Write(3)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMergeStartsUnset(t *testing.T) {
	a := ripple.From(1)
	m := ripple.Merge(a)

	// merge listens, it does not replay the source's current value
	_, ok := m.Read()
	assert.False(t, ok)

	a.Write(2)
	v, ok := m.Read()
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMergeRunsOneCyclePerSourceFiring(t *testing.T) {
	// Both merged sources derive from the same upstream node, so one
	// external write fires both within the same call stack. The merged
	// node still runs a separate cycle per source.
	a := ripple.New[int]()
	double := ripple.Map(a, func(v int) int { return v * 2 })
	triple := ripple.Map(a, func(v int) int { return v * 3 })
	m := ripple.Merge(double, triple)

	var got []int
	m.Subscribe(func(v int) {
		got = append(got, v)
	})

	a.Write(1)
	assert.Equal(t, []int{2, 3}, got)
}

func TestFilterPassesMatchingValues(t *testing.T) {
	n := ripple.New[int]()
	even := n.Filter(func(v int) bool { return v%2 == 0 })

	var got []int
	even.Subscribe(func(v int) {
		got = append(got, v)
	})

	for i := 1; i <= 6; i++ {
		n.Write(i)
	}
	assert.Equal(t, []int{2, 4, 6}, got)
}

func TestFilterStartsUnset(t *testing.T) {
	n := ripple.From(2)
	even := n.Filter(func(v int) bool { return v%2 == 0 })
	_, ok := even.Read()
	assert.False(t, ok)
}

func TestUniqueSuppressesConstructionBaseline(t *testing.T) {
	n := ripple.From("x")
	u := n.Unique()

	// the derived node starts at the baseline value
	v, ok := u.Read()
	require.True(t, ok)
	assert.Equal(t, "x", v)

	callCount := 0
	u.Subscribe(func(string) {
		callCount++
	})

	n.Write("x")
	assert.Equal(t, 0, callCount)

	n.Write("y")
	assert.Equal(t, 1, callCount)
}

func TestUniqueDropsConsecutiveDuplicates(t *testing.T) {
	n := ripple.New[int]()
	u := n.Unique()

	var got []int
	u.Subscribe(func(v int) {
		got = append(got, v)
	})

	n.Write(1)
	n.Write(1)
	n.Write(2)
	n.Write(2)
	n.Write(1)
	assert.Equal(t, []int{1, 2, 1}, got)
}

func TestUntilGatesOnCondition(t *testing.T) {
	cond := ripple.From(false)
	src := ripple.New[int]()
	gated := src.Until(cond)

	var got []int
	gated.Subscribe(func(v int) {
		got = append(got, v)
	})

	src.Write(1)
	assert.Empty(t, got)

	// opening the gate forwards the held-back current value once
	cond.Write(true)
	assert.Equal(t, []int{1}, got)

	src.Write(2)
	assert.Equal(t, []int{1, 2}, got)

	cond.Write(false)
	src.Write(3)
	assert.Equal(t, []int{1, 2}, got)

	cond.Write(true)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestUntilOpenGatePassesThrough(t *testing.T) {
	cond := ripple.From(true)
	src := ripple.From(1)
	gated := src.Until(cond)

	// with the gate open at construction, the source's current value
	// seeds the derived node
	v, ok := gated.Read()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	var got []int
	gated.Subscribe(func(v int) {
		got = append(got, v)
	})
	src.Write(2)
	assert.Equal(t, []int{2}, got)
}

func TestUntilUnstartedConditionReadsFalse(t *testing.T) {
	cond := ripple.New[bool]()
	src := ripple.From(1)
	gated := src.Until(cond)

	_, ok := gated.Read()
	assert.False(t, ok)

	var got []int
	gated.Subscribe(func(v int) {
		got = append(got, v)
	})
	src.Write(2)
	assert.Empty(t, got)

	cond.Write(true)
	assert.Equal(t, []int{2}, got)
}

func TestUntilReopenWithoutPendingEmitsNothing(t *testing.T) {
	cond := ripple.From(true)
	src := ripple.New[int]()
	gated := src.Until(cond)

	var got []int
	gated.Subscribe(func(v int) {
		got = append(got, v)
	})

	cond.Write(false)
	cond.Write(true)
	assert.Empty(t, got)
}
