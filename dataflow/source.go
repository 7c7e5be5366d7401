package dataflow

import (
	"fmt"

	"github.com/cube2222/vlcompiler/graph"
	"github.com/cube2222/vlcompiler/vegalite"
)

// SourceNode is the root of a dataflow tree, standing for the data the chart is built from.
type SourceNode struct {
	BaseNode

	data vegalite.DataSpec
}

func NewSourceNode(data vegalite.DataSpec) *SourceNode {
	return &SourceNode{
		BaseNode: newBaseNode(),
		data:     data,
	}
}

func (n *SourceNode) Data() vegalite.DataSpec {
	return n.data
}

func (n *SourceNode) Clone() Node {
	return NewSourceNode(n.data)
}

func (n *SourceNode) Visualize() *graph.Node {
	out := graph.NewNode("source")
	if n.data.Name != "" {
		out.AddField("name", n.data.Name)
	}
	if n.data.URL != "" {
		out.AddField("url", n.data.URL)
	}
	if len(n.data.Values) > 0 {
		out.AddField("values", fmt.Sprintf("%d records", len(n.data.Values)))
	}
	visualizeChildren(out, n)
	return out
}

// OutputNode names the dataset assembled up to this point.
type OutputNode struct {
	BaseNode

	name string
}

func NewOutputNode(name string) *OutputNode {
	return &OutputNode{
		BaseNode: newBaseNode(),
		name:     name,
	}
}

func (n *OutputNode) Name() string {
	return n.name
}

func (n *OutputNode) Clone() Node {
	return NewOutputNode(n.name)
}

func (n *OutputNode) Visualize() *graph.Node {
	out := graph.NewNode("output")
	out.AddField("name", n.name)
	visualizeChildren(out, n)
	return out
}
