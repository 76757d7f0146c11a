package ripple_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/delaneyj/streamparty/ripple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportDOTNilWriter(t *testing.T) {
	err := ripple.ExportDOT(nil, ripple.New[int]())
	assert.ErrorIs(t, err, ripple.ErrNilWriter)
}

func TestExportDOTRendersDiamond(t *testing.T) {
	a := ripple.New[int]().Named("a")
	b := ripple.Map(a, func(v int) int { return v }).Named("b")
	c := ripple.Map(a, func(v int) int { return v }).Named("c")
	ripple.Combine2(b, c, func(b, c int) int { return b + c }).Named("d")

	buf := &bytes.Buffer{}
	require.NoError(t, ripple.ExportDOT(buf, a))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph ripple {"))
	for _, label := range []string{"a", "b", "c", "d"} {
		assert.Contains(t, out, fmt.Sprintf("[label=%q]", label))
	}
	// four structural edges, each vertex listed once
	assert.Equal(t, 4, strings.Count(out, "->"))
	assert.Equal(t, 4, strings.Count(out, "label="))
}

func TestExportDOTIncludesListenerWiredCombinators(t *testing.T) {
	a := ripple.New[int]().Named("src")
	a.Filter(func(v int) bool { return v > 0 }).Named("positive")

	buf := &bytes.Buffer{}
	require.NoError(t, ripple.ExportDOT(buf, a))
	out := buf.String()

	assert.Contains(t, out, `[label="positive"]`)
	assert.Equal(t, 1, strings.Count(out, "->"))
}

func TestExportDOTUnnamedNodesGetGeneratedLabels(t *testing.T) {
	a := ripple.New[int]()
	buf := &bytes.Buffer{}
	require.NoError(t, ripple.ExportDOT(buf, a))
	assert.Contains(t, buf.String(), `[label="node`)
}
