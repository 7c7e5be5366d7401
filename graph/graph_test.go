package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow(t *testing.T) {
	output := NewNode("output")
	output.AddField("name", "main")

	filter := NewNode("filter invalid")
	filter.AddField("x", `datum["x"] > 0`)
	filter.AddChild("child", output)

	source := NewNode("source")
	source.AddField("url", "data/cars.json")
	source.AddChild("child", filter)

	g, err := Show(source)
	require.NoError(t, err)

	assert.Contains(t, g.Nodes.Lookup, "source_0")
	assert.Contains(t, g.Nodes.Lookup, "filter_invalid_0")
	assert.Contains(t, g.Nodes.Lookup, "output_0")
	assert.Len(t, g.Edges.Edges, 2)

	dot := g.String()
	assert.True(t, strings.HasPrefix(dot, "digraph"), dot)
	assert.Contains(t, dot, `datum[\"x\"] \> 0`)
}

func TestShow_MultipleRoots(t *testing.T) {
	g, err := Show(NewNode("source"), NewNode("source"))
	require.NoError(t, err)

	assert.Contains(t, g.Nodes.Lookup, "source_0")
	assert.Contains(t, g.Nodes.Lookup, "source_1")
	assert.Empty(t, g.Edges.Edges)
}
