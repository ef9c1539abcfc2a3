package intervalset

import (
	"strings"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
)

// Set is a possibly disconnected subset of the domain, stored in canonical form: a slice of Intervals in strictly
// ascending order in which no two elements could be merged any further (every pair is separated). A given subset has
// exactly one such representation, so Equal on canonical Sets is semantic equality. All operations treat the Set as
// an immutable snapshot and return new Sets, which makes instances safe to share between concurrent readers.
type Set[T constraints.Ordered] struct {
	intervals []Interval[T]
}

// NewSet creates a Set that contains the given Intervals, folding overlapping or touching ones together into
// canonical form. Calling it without arguments creates an empty Set.
func NewSet[T constraints.Ordered](intervals ...Interval[T]) *Set[T] {
	set := &Set[T]{}
	for _, interval := range intervals {
		set = set.UnionInterval(interval)
	}

	return set
}

// Intervals returns a copy of the Intervals of the Set in ascending order.
func (s *Set[T]) Intervals() []Interval[T] {
	return append(make([]Interval[T], 0, len(s.intervals)), s.intervals...)
}

// Size returns the number of Intervals in the canonical form of the Set.
func (s *Set[T]) Size() int {
	return len(s.intervals)
}

// IsEmpty returns true if the Set contains no points.
func (s *Set[T]) IsEmpty() bool {
	return len(s.intervals) == 0
}

// IsUniverse returns true if the Set covers the whole domain.
func (s *Set[T]) IsUniverse() bool {
	return len(s.intervals) == 1 && s.intervals[0].IsUniverse()
}

// Contains returns true if the given value lies inside the Set.
func (s *Set[T]) Contains(value T) bool {
	for _, interval := range s.intervals {
		if interval.Contains(value) {
			return true
		}
	}

	return false
}

// Equal returns true if the Set represents the same subset of the domain as the given other Set.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if len(s.intervals) != len(other.intervals) {
		return false
	}
	for k, interval := range s.intervals {
		if !interval.Equal(other.intervals[k]) {
			return false
		}
	}

	return true
}

// UnionInterval returns a new Set that additionally contains the given Interval. The Intervals that are not separated
// from the incoming one form a contiguous run in the sorted sequence; the run is folded into a single Interval via
// Merge and spliced back in place.
func (s *Set[T]) UnionInterval(interval Interval[T]) *Set[T] {
	intervals := make([]Interval[T], 0, len(s.intervals)+1)

	k := 0
	for ; k < len(s.intervals) && interval.isOtherSeparatedToTheLeft(s.intervals[k]); k++ {
		intervals = append(intervals, s.intervals[k])
	}

	merged := interval
	for ; k < len(s.intervals) && !merged.IsSeparatedFrom(s.intervals[k]); k++ {
		merged = lo.PanicOnErr(merged.Merge(s.intervals[k]))
	}

	intervals = append(intervals, merged)
	intervals = append(intervals, s.intervals[k:]...)

	return &Set[T]{intervals: intervals}
}

// Union returns a new Set that contains the points of the Set and the given other Set.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	union := s
	for _, interval := range other.intervals {
		union = union.UnionInterval(interval)
	}

	return union
}

// Or is the infix alias of Union.
func (s *Set[T]) Or(other *Set[T]) *Set[T] {
	return s.Union(other)
}

// Intersect returns a new Set that contains the points shared by the Set and the given other Set. It scans both
// sorted sequences in lockstep, emits the overlap of the current pair if one exists and advances past the Interval
// with the smaller right Endpoint (a tie advances both sides). The emitted overlaps are separated from each other
// because each source sequence is internally separated, so the result is canonical by construction.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	intervals := make([]Interval[T], 0)

	k, l := 0, 0
	for k < len(s.intervals) && l < len(other.intervals) {
		if overlap, exists := s.intervals[k].intersect(other.intervals[l]); exists {
			intervals = append(intervals, overlap)
		}

		switch result := compareRightEndpoints(s.intervals[k].right, other.intervals[l].right); {
		case result < 0:
			k++
		case result > 0:
			l++
		default:
			k++
			l++
		}
	}

	return &Set[T]{intervals: intervals}
}

// And is the infix alias of Intersect.
func (s *Set[T]) And(other *Set[T]) *Set[T] {
	return s.Intersect(other)
}

// Complement returns a new Set that contains exactly the points the Set does not contain: the gap below the first
// Interval, the gap between each consecutive pair and the gap above the last Interval, with every open bound turned
// closed and vice versa. The constructed gaps are always valid Intervals because consecutive Intervals of a canonical
// Set are separated.
func (s *Set[T]) Complement() *Set[T] {
	if s.IsEmpty() {
		return NewSet(Universe[T]())
	}

	intervals := make([]Interval[T], 0, len(s.intervals)+1)
	if first := s.intervals[0]; first.left.IsBounded() {
		intervals = append(intervals, lo.PanicOnErr(NewInterval(NewUnboundedEndpoint[T](), first.left.inverted())))
	}
	for k := 0; k+1 < len(s.intervals); k++ {
		intervals = append(intervals, lo.PanicOnErr(NewInterval(s.intervals[k].right.inverted(), s.intervals[k+1].left.inverted())))
	}
	if last := s.intervals[len(s.intervals)-1]; last.right.IsBounded() {
		intervals = append(intervals, lo.PanicOnErr(NewInterval(last.right.inverted(), NewUnboundedEndpoint[T]())))
	}

	return &Set[T]{intervals: intervals}
}

// Difference returns a new Set that contains the points of the Set that are not part of the given other Set.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	return s.Intersect(other.Complement())
}

// String returns a human-readable version of the Set.
func (s *Set[T]) String() string {
	if s.IsEmpty() {
		return "∅"
	}

	return "{" + strings.Join(lo.Map(s.intervals, Interval[T].String), ", ") + "}"
}

// compareRightEndpoints orders two right Endpoints by how far they reach: an unbounded Endpoint reaches furthest and
// on equal values an open bound ends before a closed one.
func compareRightEndpoints[T constraints.Ordered](a Endpoint[T], b Endpoint[T]) int {
	if !a.IsBounded() || !b.IsBounded() {
		switch {
		case a.IsBounded():
			return -1
		case b.IsBounded():
			return 1
		default:
			return 0
		}
	}

	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	case a.boundType == b.boundType:
		return 0
	case a.boundType == BoundTypeOpen:
		return -1
	default:
		return 1
	}
}
