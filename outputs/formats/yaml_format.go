package formats

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cube2222/vlcompiler/vega"
)

// WriteYAML writes the data section as a yaml document with a single data key.
func WriteYAML(w io.Writer, data []*vega.Data) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := struct {
		Data []*vega.Data `yaml:"data"`
	}{
		Data: data,
	}
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "couldn't encode yaml")
	}
	return enc.Close()
}

// WriteData writes the data section in the named format.
func WriteData(format string, w io.Writer, data []*vega.Data) error {
	switch format {
	case "", "json":
		return WriteJSON(w, data)
	case "yaml":
		return WriteYAML(w, data)
	default:
		return errors.Errorf("unknown output format %s, expected json or yaml", format)
	}
}
