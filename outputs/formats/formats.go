package formats

import (
	"io"

	"github.com/pkg/errors"
)

// Format writes rows of a report, like the list of filtered fields.
type Format interface {
	SetHeader(header []string)
	Write(row []string) error
	Close() error
}

func NewFormat(name string, w io.Writer) (Format, error) {
	switch name {
	case "", "table":
		return NewTableFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	default:
		return nil, errors.Errorf("unknown report format %s, expected table or csv", name)
	}
}
