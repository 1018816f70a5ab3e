package errors

import (
	"math"
	"unicode"

	"github.com/openlayout/gridarb/pkg/grid"
)

// ValidateItemID validates a panel identifier.
//
// The rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - Maximum length of 256 characters
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidItem, "item id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidItem, "item id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidItem, "item id contains control characters")
		}
	}
	return nil
}

// ValidateItem validates a single item's structural invariants: a usable ID
// and finite, non-negative geometry. Negative positions are allowed - the
// engine's bounds correction recovers off-grid items - but sizes must not
// be negative and nothing may be NaN or infinite.
func ValidateItem(it *grid.Item) error {
	if err := ValidateItemID(it.ID); err != nil {
		return err
	}
	for _, v := range []float64{it.X, it.Y, it.W, it.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidItem, "item %s has non-finite geometry", it.ID)
		}
	}
	if it.W < 0 || it.H < 0 {
		return New(ErrCodeInvalidItem, "item %s has negative size %gx%g", it.ID, it.W, it.H)
	}
	if it.MinW < 0 || it.MinH < 0 || it.MaxW < 0 || it.MaxH < 0 {
		return New(ErrCodeInvalidItem, "item %s has negative size bounds", it.ID)
	}
	if (it.MaxW > 0 && it.MinW > it.MaxW) || (it.MaxH > 0 && it.MinH > it.MaxH) {
		return New(ErrCodeInvalidItem, "item %s has min bounds above max bounds", it.ID)
	}
	return nil
}

// ValidateLayout validates a layout's structural invariants before it
// reaches the engine: every item passes ValidateItem and IDs are unique.
// The engine itself performs no defensive re-validation; callers must not
// hand it a layout that fails here.
func ValidateLayout(l grid.Layout) error {
	seen := make(map[string]bool, len(l))
	for _, it := range l {
		if it == nil {
			return New(ErrCodeInvalidLayout, "layout contains a nil item")
		}
		if err := ValidateItem(it); err != nil {
			return err
		}
		if seen[it.ID] {
			return New(ErrCodeDuplicateID, "duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}

// ValidateColumns validates a grid column count.
func ValidateColumns(cols float64) error {
	if math.IsNaN(cols) || math.IsInf(cols, 0) || cols <= 0 {
		return New(ErrCodeInvalidColumns, "column count must be a positive number, got %g", cols)
	}
	return nil
}

// ValidatePoint validates a pointer or move target coordinate.
func ValidatePoint(x, y float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return New(ErrCodeInvalidPosition, "coordinates must be finite, got (%g, %g)", x, y)
	}
	return nil
}
