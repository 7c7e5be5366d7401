// Package vega holds the pieces of the Vega specification produced by the compiler.
package vega

type TransformType string

const (
	TransformTypeFilter TransformType = "filter"
)

type Transform struct {
	Type TransformType `json:"type" yaml:"type"`
	Expr string        `json:"expr" yaml:"expr"`
}

func FilterTransform(expr string) *Transform {
	return &Transform{
		Type: TransformTypeFilter,
		Expr: expr,
	}
}

// Compact drops empty placeholders, keeping the order of the remaining transforms.
func Compact(transforms []*Transform) []*Transform {
	out := make([]*Transform, 0, len(transforms))
	for _, transform := range transforms {
		if transform != nil {
			out = append(out, transform)
		}
	}
	return out
}

// Data is a single entry of the data section. Exactly one of Source, URL and Values is set, if any.
type Data struct {
	Name      string                   `json:"name" yaml:"name"`
	Source    string                   `json:"source,omitempty" yaml:"source,omitempty"`
	URL       string                   `json:"url,omitempty" yaml:"url,omitempty"`
	Values    []map[string]interface{} `json:"values,omitempty" yaml:"values,omitempty"`
	Transform []*Transform             `json:"transform,omitempty" yaml:"transform,omitempty"`
}

// FilterExpressions returns the expressions of all filter transforms of the dataset, in order.
func (d *Data) FilterExpressions() []string {
	var out []string
	for _, transform := range d.Transform {
		if transform != nil && transform.Type == TransformTypeFilter {
			out = append(out, transform.Expr)
		}
	}
	return out
}
