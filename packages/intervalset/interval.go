package intervalset

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/constraints"
)

// Interval is a contiguous range of the domain delimited by two Endpoints. It is validated once at construction and
// immutable afterwards; all operations that derive a different range return a newly constructed Interval.
type Interval[T constraints.Ordered] struct {
	left  Endpoint[T]
	right Endpoint[T]
}

// NewInterval creates an Interval from the given left and right Endpoints. It returns an ErrInvalidInterval if both
// sides are bounded and the left value is not below the right one, with the single exception of a closed interval
// whose values coincide (a degenerate interval containing exactly one point).
func NewInterval[T constraints.Ordered](left Endpoint[T], right Endpoint[T]) (Interval[T], error) {
	if left.IsBounded() && right.IsBounded() {
		if left.boundType == BoundTypeClosed && right.boundType == BoundTypeClosed {
			if left.value > right.value {
				return Interval[T]{}, errors.Wrapf(ErrInvalidInterval, "low %v is greater than high %v", left.value, right.value)
			}
		} else if left.value >= right.value {
			return Interval[T]{}, errors.Wrapf(ErrInvalidInterval, "low %v is not less than high %v", left.value, right.value)
		}
	}

	return Interval[T]{left: left, right: right}, nil
}

// Open creates an Interval that excludes both of its bounds.
func Open[T constraints.Ordered](low T, high T) (Interval[T], error) {
	return NewInterval(NewOpenEndpoint(low), NewOpenEndpoint(high))
}

// Closed creates an Interval that includes both of its bounds. It may be degenerate.
func Closed[T constraints.Ordered](low T, high T) (Interval[T], error) {
	return NewInterval(NewClosedEndpoint(low), NewClosedEndpoint(high))
}

// OpenClosed creates an Interval that excludes its low bound and includes its high bound.
func OpenClosed[T constraints.Ordered](low T, high T) (Interval[T], error) {
	return NewInterval(NewOpenEndpoint(low), NewClosedEndpoint(high))
}

// ClosedOpen creates an Interval that includes its low bound and excludes its high bound.
func ClosedOpen[T constraints.Ordered](low T, high T) (Interval[T], error) {
	return NewInterval(NewClosedEndpoint(low), NewOpenEndpoint(high))
}

// UnboundedOpen creates an Interval that is unbounded on the left and excludes its high bound.
func UnboundedOpen[T constraints.Ordered](high T) Interval[T] {
	return Interval[T]{left: NewUnboundedEndpoint[T](), right: NewOpenEndpoint(high)}
}

// UnboundedClosed creates an Interval that is unbounded on the left and includes its high bound.
func UnboundedClosed[T constraints.Ordered](high T) Interval[T] {
	return Interval[T]{left: NewUnboundedEndpoint[T](), right: NewClosedEndpoint(high)}
}

// OpenUnbounded creates an Interval that excludes its low bound and is unbounded on the right.
func OpenUnbounded[T constraints.Ordered](low T) Interval[T] {
	return Interval[T]{left: NewOpenEndpoint(low), right: NewUnboundedEndpoint[T]()}
}

// ClosedUnbounded creates an Interval that includes its low bound and is unbounded on the right.
func ClosedUnbounded[T constraints.Ordered](low T) Interval[T] {
	return Interval[T]{left: NewClosedEndpoint(low), right: NewUnboundedEndpoint[T]()}
}

// Universe creates an Interval that covers the whole domain.
func Universe[T constraints.Ordered]() Interval[T] {
	return Interval[T]{left: NewUnboundedEndpoint[T](), right: NewUnboundedEndpoint[T]()}
}

// Left returns the left Endpoint of the Interval.
func (i Interval[T]) Left() Endpoint[T] {
	return i.left
}

// Right returns the right Endpoint of the Interval.
func (i Interval[T]) Right() Endpoint[T] {
	return i.right
}

// Low returns the low value of the Interval together with a boolean flag that is false if the Interval is unbounded
// on the left.
func (i Interval[T]) Low() (low T, exists bool) {
	return i.left.Value()
}

// High returns the high value of the Interval together with a boolean flag that is false if the Interval is unbounded
// on the right.
func (i Interval[T]) High() (high T, exists bool) {
	return i.right.Value()
}

// IsUniverse returns true if the Interval is unbounded on both sides.
func (i Interval[T]) IsUniverse() bool {
	return !i.left.IsBounded() && !i.right.IsBounded()
}

// IsDegenerate returns true if the Interval contains exactly one point, which is the case if both Endpoints are
// closed and their values coincide.
func (i Interval[T]) IsDegenerate() bool {
	return i.left.boundType == BoundTypeClosed && i.right.boundType == BoundTypeClosed && i.left.value == i.right.value
}

// IsBounded returns true if neither side of the Interval is unbounded.
func (i Interval[T]) IsBounded() bool {
	return i.left.IsBounded() && i.right.IsBounded()
}

// IsUnbounded returns true if at least one side of the Interval is unbounded.
func (i Interval[T]) IsUnbounded() bool {
	return !i.IsBounded()
}

// Contains returns true if the given value lies inside the Interval.
func (i Interval[T]) Contains(value T) bool {
	switch i.left.boundType {
	case BoundTypeOpen:
		if value <= i.left.value {
			return false
		}
	case BoundTypeClosed:
		if value < i.left.value {
			return false
		}
	}

	switch i.right.boundType {
	case BoundTypeOpen:
		if value >= i.right.value {
			return false
		}
	case BoundTypeClosed:
		if value > i.right.value {
			return false
		}
	}

	return true
}

// Equal returns true if the Interval is identical to the given other Interval.
func (i Interval[T]) Equal(other Interval[T]) bool {
	return i.left.Equal(other.left) && i.right.Equal(other.right)
}

// IsSeparatedFrom returns true if there is a genuine gap between the Interval and the given other Interval: the two
// are separated if and only if the closure of either one is disjoint from the other, so even two open bounds meeting
// at the same value do not separate them.
func (i Interval[T]) IsSeparatedFrom(other Interval[T]) bool {
	return i.isOtherSeparatedToTheLeft(other) || i.isOtherSeparatedToTheRight(other)
}

// Merge combines the Interval with the given other Interval into their convex hull. It returns an
// ErrMergeSeparatedIntervals if the two intervals are separated, because the hull would then cover points that belong
// to neither of them.
func (i Interval[T]) Merge(other Interval[T]) (Interval[T], error) {
	if i.IsSeparatedFrom(other) {
		return Interval[T]{}, errors.Wrapf(ErrMergeSeparatedIntervals, "%s is separated from %s", i, other)
	}

	// non-separation guarantees that the hull has no internal gap, so the combined pair is always valid
	return Interval[T]{
		left:  i.smallerLeftEndpoint(other),
		right: i.greaterRightEndpoint(other),
	}, nil
}

// String returns the canonical notation of the Interval, collapsing a degenerate interval to its single point and
// rendering unbounded sides as infinities with an open bracket.
func (i Interval[T]) String() string {
	if i.IsDegenerate() {
		return fmt.Sprintf("[%v]", i.left.value)
	}

	var low, high string
	switch i.left.boundType {
	case BoundTypeOpen:
		low = fmt.Sprintf("(%v", i.left.value)
	case BoundTypeClosed:
		low = fmt.Sprintf("[%v", i.left.value)
	default:
		low = "(-∞"
	}
	switch i.right.boundType {
	case BoundTypeOpen:
		high = fmt.Sprintf("%v)", i.right.value)
	case BoundTypeClosed:
		high = fmt.Sprintf("%v]", i.right.value)
	default:
		high = "+∞)"
	}

	return low + ", " + high
}

// isOtherSeparatedToTheLeft returns true if the given other Interval lies entirely below the Interval with a gap in
// between. A closed left bound requires the other interval to end strictly below it, while an open left bound also
// tolerates an open other end meeting it at the same value.
func (i Interval[T]) isOtherSeparatedToTheLeft(other Interval[T]) bool {
	switch i.left.boundType {
	case BoundTypeOpen:
		switch other.right.boundType {
		case BoundTypeOpen:
			return i.left.value >= other.right.value
		case BoundTypeClosed:
			return i.left.value > other.right.value
		default:
			return false
		}
	case BoundTypeClosed:
		return other.right.IsBounded() && i.left.value > other.right.value
	default:
		return false
	}
}

// isOtherSeparatedToTheRight returns true if the given other Interval lies entirely above the Interval with a gap in
// between. It mirrors isOtherSeparatedToTheLeft with the inequalities reversed.
func (i Interval[T]) isOtherSeparatedToTheRight(other Interval[T]) bool {
	switch i.right.boundType {
	case BoundTypeOpen:
		switch other.left.boundType {
		case BoundTypeOpen:
			return i.right.value <= other.left.value
		case BoundTypeClosed:
			return i.right.value < other.left.value
		default:
			return false
		}
	case BoundTypeClosed:
		return other.left.IsBounded() && i.right.value < other.left.value
	default:
		return false
	}
}

// smallerLeftEndpoint returns the more inclusive of the two left Endpoints: unbounded dominates, otherwise the
// smaller value wins and a closed bound beats an open one on a value tie.
func (i Interval[T]) smallerLeftEndpoint(other Interval[T]) Endpoint[T] {
	if !i.left.IsBounded() || !other.left.IsBounded() {
		return NewUnboundedEndpoint[T]()
	}

	switch {
	case i.left.value < other.left.value:
		return i.left
	case i.left.value > other.left.value:
		return other.left
	case i.left.boundType == BoundTypeClosed || other.left.boundType == BoundTypeClosed:
		return NewClosedEndpoint(i.left.value)
	default:
		return NewOpenEndpoint(i.left.value)
	}
}

// greaterLeftEndpoint returns the less inclusive of the two left Endpoints: unbounded yields to any bounded
// Endpoint, otherwise the greater value wins and an open bound beats a closed one on a value tie.
func (i Interval[T]) greaterLeftEndpoint(other Interval[T]) Endpoint[T] {
	if !i.left.IsBounded() {
		return other.left
	}
	if !other.left.IsBounded() {
		return i.left
	}

	switch {
	case i.left.value > other.left.value:
		return i.left
	case i.left.value < other.left.value:
		return other.left
	case i.left.boundType == BoundTypeOpen || other.left.boundType == BoundTypeOpen:
		return NewOpenEndpoint(i.left.value)
	default:
		return NewClosedEndpoint(i.left.value)
	}
}

// lesserRightEndpoint returns the less inclusive of the two right Endpoints: unbounded yields to any bounded
// Endpoint, otherwise the smaller value wins and an open bound beats a closed one on a value tie.
func (i Interval[T]) lesserRightEndpoint(other Interval[T]) Endpoint[T] {
	if !i.right.IsBounded() {
		return other.right
	}
	if !other.right.IsBounded() {
		return i.right
	}

	switch {
	case i.right.value < other.right.value:
		return i.right
	case i.right.value > other.right.value:
		return other.right
	case i.right.boundType == BoundTypeOpen || other.right.boundType == BoundTypeOpen:
		return NewOpenEndpoint(i.right.value)
	default:
		return NewClosedEndpoint(i.right.value)
	}
}

// greaterRightEndpoint returns the more inclusive of the two right Endpoints: unbounded dominates, otherwise the
// greater value wins and a closed bound beats an open one on a value tie.
func (i Interval[T]) greaterRightEndpoint(other Interval[T]) Endpoint[T] {
	if !i.right.IsBounded() || !other.right.IsBounded() {
		return NewUnboundedEndpoint[T]()
	}

	switch {
	case i.right.value > other.right.value:
		return i.right
	case i.right.value < other.right.value:
		return other.right
	case i.right.boundType == BoundTypeClosed || other.right.boundType == BoundTypeClosed:
		return NewClosedEndpoint(i.right.value)
	default:
		return NewOpenEndpoint(i.right.value)
	}
}

// intersect returns the overlap of the Interval with the given other Interval together with a boolean flag that is
// false if the two intervals share no point. Two intervals that are not separated can still have an empty overlap
// when they only touch at a value that one of them excludes (e.g. (0, 1) and [1, 2]); the validating constructor
// rejects the resulting combination and the overlap is reported as non-existent.
func (i Interval[T]) intersect(other Interval[T]) (Interval[T], bool) {
	if i.IsSeparatedFrom(other) {
		return Interval[T]{}, false
	}

	overlap, err := NewInterval(i.greaterLeftEndpoint(other), i.lesserRightEndpoint(other))
	if err != nil {
		return Interval[T]{}, false
	}

	return overlap, true
}
