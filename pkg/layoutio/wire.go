package layoutio

import "github.com/openlayout/gridarb/pkg/grid"

// WireItem is the JSON wire representation of a grid item, shared by
// layout snapshots and the HTTP API payloads.
type WireItem struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	MinW   float64 `json:"minW,omitempty"`
	MinH   float64 `json:"minH,omitempty"`
	MaxW   float64 `json:"maxW,omitempty"`
	MaxH   float64 `json:"maxH,omitempty"`
	Static bool    `json:"static,omitempty"`

	IsDraggable *bool `json:"isDraggable,omitempty"`
	IsResizable *bool `json:"isResizable,omitempty"`
}

// ToWire converts a layout to its wire representation.
func ToWire(l grid.Layout) []WireItem {
	out := make([]WireItem, len(l))
	for i, it := range l {
		out[i] = WireItem{
			ID: it.ID,
			X:  it.X, Y: it.Y, W: it.W, H: it.H,
			MinW: it.MinW, MinH: it.MinH, MaxW: it.MaxW, MaxH: it.MaxH,
			Static:      it.Static,
			IsDraggable: it.IsDraggable,
			IsResizable: it.IsResizable,
		}
	}
	return out
}

// FromWire converts wire items back to a layout. The result is not
// validated; run it through errors.ValidateLayout before handing it to the
// engine.
func FromWire(items []WireItem) grid.Layout {
	l := make(grid.Layout, len(items))
	for i, it := range items {
		l[i] = &grid.Item{
			ID: it.ID,
			X:  it.X, Y: it.Y, W: it.W, H: it.H,
			MinW: it.MinW, MinH: it.MinH, MaxW: it.MaxW, MaxH: it.MaxH,
			Static:      it.Static,
			IsDraggable: it.IsDraggable,
			IsResizable: it.IsResizable,
		}
	}
	return l
}
