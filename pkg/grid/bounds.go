package grid

// CorrectBounds clips every item into a grid that is cols columns wide and
// returns the corrected layout. Items are visited in original order:
//
//   - An item whose right edge exceeds cols is shifted left until the edge
//     sits at cols; its size is unchanged.
//   - An item starting left of the grid is reset to x=0 and forced to full
//     width. This is a deliberately aggressive recovery for off-grid input,
//     not a general reflow.
//
// Non-static items join a running obstacle set once corrected. A static
// item that collides with anything already in the set is nudged down one
// row at a time until clear; statics are corrected for bounds but never
// shrunk or shifted horizontally.
func CorrectBounds(l Layout, cols float64) Layout {
	cl := l.Clone()
	collidesWith := Statics(cl)
	for _, it := range cl {
		if it.Right() > cols {
			it.X = cols - it.W
		}
		if it.X < 0 {
			it.X = 0
			it.W = cols
		}
		if !it.Static {
			collidesWith = append(collidesWith, it)
		} else {
			// Statics may legitimately overlap each other, but one that
			// lands on an already-placed item after repositioning moves
			// down until it finds room.
			for FirstCollision(collidesWith, it) != nil {
				it.Y++
			}
		}
	}
	return cl
}
