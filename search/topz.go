package search

import (
	"container/heap"
	"math"
)

// Candidate is one entry of the top-z list: an itemset and its heuristic
// value, plus the insertion index used to break exact ties (spec.md §4.6
// "Equal heuristics: the earlier-inserted candidate stays ranked higher").
type Candidate struct {
	X     Mask
	H     float64
	order int
}

// topZ is a size-capped priority list of Candidates, ordered ascending by
// (H, -order) so the *worst* candidate sits at heap[0] and can be evicted in
// O(log z) when a better one arrives. Adapted from the teacher's dijkstra
// nodePQ: same Len/Less/Swap/Push/Pop shape, specialized to itemset
// candidates ordered by heuristic instead of vertices ordered by distance.
type topZ struct {
	cap   int
	items []Candidate
	next  int
}

func newTopZ(z int) *topZ {
	return &topZ{cap: z}
}

func (q *topZ) Len() int { return len(q.items) }

// Less ranks the worse candidate first: lower H is worse, and among equal H
// the later-inserted one is worse (ties favor the earlier insertion).
func (q *topZ) Less(i, j int) bool {
	if q.items[i].H != q.items[j].H {
		return q.items[i].H < q.items[j].H
	}

	return q.items[i].order > q.items[j].order
}

func (q *topZ) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *topZ) Push(x interface{}) { q.items = append(q.items, x.(Candidate)) }

func (q *topZ) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]

	return item
}

// Worst returns the current worst-ranked member's H, or -Inf if the list
// isn't yet full to capacity (so any candidate is accepted).
func (q *topZ) Worst() float64 {
	if q.cap > 0 && len(q.items) < q.cap {
		return negInf
	}
	if len(q.items) == 0 {
		return negInf
	}

	return q.items[0].H
}

// Offer inserts (X, h) if the list has room or h beats the current worst
// member, evicting the worst member to stay within cap.
func (q *topZ) Offer(X Mask, h float64) {
	if q.cap == 0 {
		return
	}
	if len(q.items) < q.cap {
		heap.Push(q, Candidate{X: X, H: h, order: q.next})
		q.next++

		return
	}
	if h <= q.items[0].H {
		return
	}
	heap.Push(q, Candidate{X: X, H: h, order: q.next})
	q.next++
	heap.Pop(q)
}

// Sorted returns the list's members in descending H order (ties broken by
// earlier insertion first), the shape FindBest/FindBestParallel return to
// their caller.
func (q *topZ) Sorted() []Candidate {
	out := make([]Candidate, len(q.items))
	copy(out, q.items)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && worse(out[j-1], out[j]); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}

// worse reports whether a ranks below b under the descending-H, ties-favor-
// earlier-insertion total order (the inverse of topZ's internal Less, which
// ranks the worst member to the front for eviction).
func worse(a, b Candidate) bool {
	if a.H != b.H {
		return a.H < b.H
	}

	return a.order > b.order
}

var negInf = math.Inf(-1)
