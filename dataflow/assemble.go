package dataflow

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/cube2222/vlcompiler/model"
	"github.com/cube2222/vlcompiler/vega"
	"github.com/cube2222/vlcompiler/vegalite"
)

const MainDataName = "main"

// Build creates the dataflow of a unit chart: its source, the invalid value filter if any field needs it, and the main output.
func Build(m *model.UnitModel) *SourceNode {
	source := NewSourceNode(m.Data())

	var last Node = source
	if m.InvalidValues() == vegalite.InvalidValuesFilter {
		if filterInvalid := MakeFilterInvalid(m); filterInvalid != nil {
			Link(last, filterInvalid)
			last = filterInvalid
		}
	}
	Link(last, NewOutputNode(MainDataName))

	return source
}

type assembler struct {
	out []*vega.Data
}

// Assemble produces the data section of the Vega spec from the given dataflow trees.
// Datasets are listed parents first. A node with multiple children forks the dataset,
// each branch deriving a new dataset from the current one.
func Assemble(roots ...*SourceNode) ([]*vega.Data, error) {
	a := &assembler{}

	for i, root := range roots {
		if root.Parent() != nil {
			return nil, errors.Errorf("source with index %d isn't the root of its dataflow", i)
		}
		data := root.Data()
		dataset := &vega.Data{
			Name:   data.Name,
			URL:    data.URL,
			Values: data.Values,
		}
		a.out = append(a.out, dataset)
		a.walk(root, dataset)
	}

	for i := range a.out {
		if a.out[i].Name == "" {
			a.out[i].Name = fmt.Sprintf("data_%d", i)
		}
	}

	return a.out, nil
}

func (a *assembler) walk(node Node, dataset *vega.Data) {
	switch node := node.(type) {
	case TransformNode:
		dataset.Transform = append(dataset.Transform, vega.Compact(node.Assemble())...)

	case *OutputNode:
		if dataset.Name == "" {
			dataset.Name = node.Name()
		} else if dataset.Name != node.Name() {
			derived := &vega.Data{
				Name:   node.Name(),
				Source: dataset.Name,
			}
			a.out = append(a.out, derived)
			dataset = derived
		}
	}

	children := node.Children()
	switch len(children) {
	case 0:
	case 1:
		a.walk(children[0], dataset)
	default:
		if dataset.Name == "" {
			dataset.Name = fmt.Sprintf("data_%d", a.indexOf(dataset))
		}
		for _, child := range children {
			branch := &vega.Data{
				Source: dataset.Name,
			}
			a.out = append(a.out, branch)
			a.walk(child, branch)
		}
	}
}

func (a *assembler) indexOf(dataset *vega.Data) int {
	for i := range a.out {
		if a.out[i] == dataset {
			return i
		}
	}
	return -1
}
