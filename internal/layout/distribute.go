package layout

import "github.com/chewxy/math32"

// Epsilon is the tolerance below which leftover space is ignored and two
// extents are considered equal.
const Epsilon float32 = 1e-3

// Item is one candidate extent taking part in a distribution.
type Item struct {
	Size float32 // Current extent, updated in place
	Min  float32 // Floor when shrinking
}

// Distribute spreads budget over items. A positive budget grows them, a
// negative one shrinks them. It returns the part of the budget that could
// not be placed: zero when growing into at least one item, the remaining
// deficit (negative) when every item reached its minimum.
//
// Growth is smallest-first: the group of items tied at the smallest extent
// is raised toward the next-smallest extent, never by more than an equal
// share of what is left, and the group absorbs the next one when they meet.
// Shrinking mirrors this from the largest extent downward and drops items
// once they reach Min.
func Distribute(items []Item, budget float32) float32 {
	switch {
	case budget > Epsilon:
		return grow(items, budget)
	case budget < -Epsilon:
		return -shrink(items, -budget)
	default:
		return 0
	}
}

// loopLimit bounds the number of passes. Every pass merges two tie groups,
// removes an item, or exhausts the budget, so 2n+1 passes always suffice;
// the slack covers float rounding.
func loopLimit(n int) int {
	return 4*n + 8
}

func grow(items []Item, budget float32) float32 {
	if len(items) == 0 {
		return budget
	}
	tied := make([]int, 0, len(items))
	for iter := 0; budget > Epsilon && iter < loopLimit(len(items)); iter++ {
		smallest := math32.Inf(1)
		for i := range items {
			smallest = math32.Min(smallest, items[i].Size)
		}

		next := math32.Inf(1)
		tied = tied[:0]
		for i := range items {
			if items[i].Size <= smallest+Epsilon {
				tied = append(tied, i)
			} else {
				next = math32.Min(next, items[i].Size)
			}
		}

		delta := math32.Min(next-smallest, budget/float32(len(tied)))
		delta = math32.Min(delta, budget)
		for _, i := range tied {
			budget -= smallest + delta - items[i].Size
			items[i].Size = smallest + delta
		}
	}
	return math32.Max(budget, 0)
}

func shrink(items []Item, deficit float32) float32 {
	active := make([]int, 0, len(items))
	for i := range items {
		if items[i].Size > items[i].Min+Epsilon {
			active = append(active, i)
		}
	}

	tied := make([]int, 0, len(items))
	for iter := 0; deficit > Epsilon && len(active) > 0 && iter < loopLimit(len(items)); iter++ {
		largest := math32.Inf(-1)
		for _, i := range active {
			largest = math32.Max(largest, items[i].Size)
		}

		next := math32.Inf(-1)
		tied = tied[:0]
		for _, i := range active {
			if items[i].Size >= largest-Epsilon {
				tied = append(tied, i)
			} else {
				next = math32.Max(next, items[i].Size)
			}
		}

		delta := math32.Min(largest-next, deficit/float32(len(tied)))
		delta = math32.Min(delta, deficit)
		for _, i := range tied {
			target := math32.Max(largest-delta, items[i].Min)
			deficit -= items[i].Size - target
			items[i].Size = target
		}

		remaining := active[:0]
		for _, i := range active {
			if items[i].Size > items[i].Min+Epsilon {
				remaining = append(remaining, i)
			}
		}
		active = remaining
	}
	return math32.Max(deficit, 0)
}
