package layoutio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/openlayout/gridarb/pkg/errors"
	"github.com/openlayout/gridarb/pkg/grid"
)

type manifestFile struct {
	Cols            float64       `toml:"cols"`
	VerticalCompact *bool         `toml:"vertical_compact"`
	Panels          []panelConfig `toml:"panel"`
}

type panelConfig struct {
	ID     string  `toml:"id"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	W      float64 `toml:"w"`
	H      float64 `toml:"h"`
	MinW   float64 `toml:"min_w"`
	MinH   float64 `toml:"min_h"`
	MaxW   float64 `toml:"max_w"`
	MaxH   float64 `toml:"max_h"`
	Static bool    `toml:"static"`

	Draggable *bool `toml:"draggable"`
	Resizable *bool `toml:"resizable"`
}

// ParseManifest reads a TOML dashboard manifest and returns the declared
// layout. Panels without an id are assigned a generated one, so a manifest
// author can declare panels positionally and still address them later
// through the exported snapshot.
//
// Missing cols defaults to [DefaultCols]; vertical compaction defaults to
// enabled. Validation failures surface with structured error codes.
func ParseManifest(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}

	var mf manifestFile
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}

	doc := &Document{Cols: DefaultCols, VerticalCompact: true}
	if mf.Cols != 0 {
		doc.Cols = mf.Cols
	}
	if mf.VerticalCompact != nil {
		doc.VerticalCompact = *mf.VerticalCompact
	}

	doc.Layout = make(grid.Layout, len(mf.Panels))
	for i, p := range mf.Panels {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		doc.Layout[i] = &grid.Item{
			ID: id,
			X:  p.X, Y: p.Y, W: p.W, H: p.H,
			MinW: p.MinW, MinH: p.MinH, MaxW: p.MaxW, MaxH: p.MaxH,
			Static:      p.Static,
			IsDraggable: p.Draggable,
			IsResizable: p.Resizable,
		}
	}

	if err := errors.ValidateColumns(doc.Cols); err != nil {
		return nil, err
	}
	if err := errors.ValidateLayout(doc.Layout); err != nil {
		return nil, err
	}
	return doc, nil
}

// Import reads a layout from path, dispatching on the file extension:
// .toml parses as a dashboard manifest, anything else as a JSON snapshot.
func Import(path string) (*Document, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseManifest(path)
	}
	return ImportJSON(path)
}
