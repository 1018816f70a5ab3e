package grid

import "math"

// probeID marks the throwaway item used to test candidate positions. It
// never enters a layout, so it can never win an identity check.
const probeID = "__probe__"

// Position is an optional target coordinate for MoveElement. Either axis
// may be left unset, in which case the item keeps its current value on that
// axis. Build one with At, AtX or AtY.
type Position struct {
	x, y *float64
}

// At targets both axes.
func At(x, y float64) Position {
	return Position{x: &x, y: &y}
}

// AtX targets the x axis only.
func AtX(x float64) Position {
	return Position{x: &x}
}

// AtY targets the y axis only.
func AtY(y float64) Position {
	return Position{y: &y}
}

// collisionPair is one pending displacement: mover has just been placed and
// overlaps obstacle. Pairs are resolved depth-first from a stack, which
// bounds the cascade without unbounded recursion.
type collisionPair struct {
	mover      *Item
	obstacle   *Item
	userAction bool
}

// MoveElement moves the item with the given ID to the target position and
// cascades displacement to every item it newly overlaps. The input layout
// is never modified; the result is a new layout.
//
// A static or unknown ID is a no-op. When preventCollision is set and the
// target position overlaps anything, the move is rejected and the input
// layout is returned unchanged - an expected outcome of interactive
// dragging, not an error.
//
// isUserAction distinguishes a direct drag from a cascade step: only a
// direct drag attempts the "jump above the obstacle" fast path; cascaded
// displacements always fall back to moving one row down at a time, which
// keeps multi-item cascades stable.
//
// Collisions are resolved nearest-first: the layout is traversed in
// row-major order, reversed when the item travels upward, so resolution
// starts from the side the item is moving into. Items already displaced in
// this pass are skipped, which terminates the cascade. A collision where
// the mover sits below the obstacle by more than a quarter of the
// obstacle's height is ignored as a near miss, so a barely-overlapping drag
// does not trigger jittery swaps.
func MoveElement(l Layout, id string, to Position, isUserAction, preventCollision bool) Layout {
	src := l.Find(id)
	if src == nil || src.Static {
		return l
	}

	cl := l.Clone()
	clearMoved(cl)
	it := cl.Find(id)

	movingUp := to.y != nil && it.Y > *to.y
	if to.x != nil {
		it.X = *to.x
	}
	if to.y != nil {
		it.Y = *to.y
	}
	it.Moved = true

	collisions := orderedCollisions(cl, it, movingUp)
	if preventCollision && len(collisions) > 0 {
		return l
	}

	var stack []collisionPair
	pushPairs(&stack, it, collisions, isUserAction)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		resolvePair(cl, &stack, p)
	}
	return cl
}

// orderedCollisions returns the items overlapping it, nearest-first for the
// direction of travel.
func orderedCollisions(cl Layout, it *Item, movingUp bool) []*Item {
	sorted := SortLayout(cl)
	if movingUp {
		sorted = reverse(sorted)
	}
	return AllCollisions(sorted, it)
}

// pushPairs schedules one pending displacement per obstacle. Obstacles are
// pushed in reverse so the nearest one is popped, and fully resolved, first.
func pushPairs(stack *[]collisionPair, mover *Item, obstacles []*Item, userAction bool) {
	for i := len(obstacles) - 1; i >= 0; i-- {
		*stack = append(*stack, collisionPair{mover: mover, obstacle: obstacles[i], userAction: userAction})
	}
}

// resolvePair handles a single mover/obstacle overlap. The checks run when
// the pair is popped, not when it was scheduled, so displacements performed
// by earlier pairs are taken into account.
func resolvePair(cl Layout, stack *[]collisionPair, p collisionPair) {
	if p.obstacle.Moved {
		return
	}
	// Near-miss tolerance: the mover sits below the obstacle with barely
	// any overlap, so leave the obstacle alone.
	if p.mover.Y > p.obstacle.Y && p.mover.Y-p.obstacle.Y > p.obstacle.H/4 {
		return
	}
	if p.obstacle.Static {
		// The obstacle cannot move; displace the mover instead.
		displace(cl, stack, p.obstacle, p.mover, p.userAction)
	} else {
		displace(cl, stack, p.mover, p.obstacle, p.userAction)
	}
}

// displace moves itemToMove out of the way of collidesWith.
//
// On a direct user action it first probes the slot directly above the
// obstacle; if that position is free against the current layout, the item
// jumps there. Otherwise, and for every cascaded displacement, the item
// moves one row below its current position and any new overlap is resolved
// iteratively. The conservative fallback avoids reordering surprises when
// several items cascade at once.
func displace(cl Layout, stack *[]collisionPair, collidesWith, itemToMove *Item, userAction bool) {
	if userAction {
		probe := Item{
			ID: probeID,
			X:  itemToMove.X,
			Y:  math.Max(collidesWith.Y-itemToMove.H, 0),
			W:  itemToMove.W,
			H:  itemToMove.H,
		}
		if FirstCollision(cl, &probe) == nil {
			applyMove(cl, stack, itemToMove, probe.Y)
			return
		}
	}
	applyMove(cl, stack, itemToMove, itemToMove.Y+1)
}

// applyMove commits a cascaded vertical move and schedules the overlaps it
// creates. Cascade steps are never user actions and never reject:
// the collision is already known and must be resolved.
func applyMove(cl Layout, stack *[]collisionPair, it *Item, y float64) {
	if it.Static {
		return
	}
	movingUp := y < it.Y
	it.Y = y
	it.Moved = true
	pushPairs(stack, it, orderedCollisions(cl, it, movingUp), false)
}
