package layoutio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/openlayout/gridarb/pkg/errors"
	"github.com/openlayout/gridarb/pkg/grid"
)

// Document is a layout together with the grid settings it was written for.
type Document struct {
	Cols            float64
	VerticalCompact bool
	Layout          grid.Layout
}

// DefaultCols is assumed when a snapshot or manifest does not name a
// column count.
const DefaultCols = 12

type layoutJSON struct {
	Cols            *float64   `json:"cols,omitempty"`
	VerticalCompact *bool      `json:"verticalCompact,omitempty"`
	Items           []WireItem `json:"items"`
}

// ReadJSON decodes a JSON layout snapshot from r and validates it.
//
// ReadJSON returns an error if the JSON is malformed, if any item fails the
// structural invariants (empty or duplicate id, negative size, non-finite
// geometry), or if the column count is not positive. Errors carry the
// structured codes from the errors package; use errors.Is to check them.
//
// The returned document is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var data layoutJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
	}

	doc := &Document{Cols: DefaultCols, VerticalCompact: true}
	if data.Cols != nil {
		doc.Cols = *data.Cols
	}
	if data.VerticalCompact != nil {
		doc.VerticalCompact = *data.VerticalCompact
	}

	doc.Layout = FromWire(data.Items)

	if err := errors.ValidateColumns(doc.Cols); err != nil {
		return nil, err
	}
	if err := errors.ValidateLayout(doc.Layout); err != nil {
		return nil, err
	}
	return doc, nil
}

// WriteJSON encodes a document as indented JSON. The output can be
// re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(doc *Document, w io.Writer) error {
	cols := doc.Cols
	vc := doc.VerticalCompact
	out := layoutJSON{
		Cols:            &cols,
		VerticalCompact: &vc,
		Items:           ToWire(doc.Layout),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}

// ImportJSON reads the JSON snapshot at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	doc, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ExportJSON writes the document to path, creating or truncating the file.
func ExportJSON(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteJSON(doc, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
