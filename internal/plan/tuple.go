package plan

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/born-ml/strided/internal/layout"
)

// Tuple is the plain (extents, strides, offset) form of a layout, for
// handing a layout across a process boundary.
type Tuple struct {
	Extents []int `toml:"extents" json:"extents"`
	Strides []int `toml:"strides" json:"strides"`
	Offset  int   `toml:"offset" json:"offset"`
}

// TupleOf returns the plain form of l.
func TupleOf(l layout.Layout) Tuple {
	return Tuple{Extents: l.Extents(), Strides: l.Strides(), Offset: l.Offset()}
}

// Layout rebuilds the layout.
func (t Tuple) Layout() (layout.Layout, error) {
	return layout.New(t.Extents, t.Strides, t.Offset)
}

// WriteTOML encodes l as a TOML table.
func WriteTOML(w io.Writer, l layout.Layout) error {
	return toml.NewEncoder(w).Encode(TupleOf(l))
}

// ReadTOML decodes a layout written by WriteTOML.
func ReadTOML(r io.Reader) (layout.Layout, error) {
	var t Tuple
	if _, err := toml.NewDecoder(r).Decode(&t); err != nil {
		return layout.Layout{}, err
	}
	return t.Layout()
}
