package intervalset

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/stringify"
)

// Endpoint is one boundary of an Interval. It is immutable and carries a value only if its BoundType is open or
// closed. An Endpoint has no ordering of its own: whether an open bound at some value lies before or after a closed
// bound at the same value depends on the side of the Interval it terminates, so all comparisons live in Interval.
type Endpoint[T constraints.Ordered] struct {
	value     T
	boundType BoundType
}

// NewOpenEndpoint creates an Endpoint that excludes the given value.
func NewOpenEndpoint[T constraints.Ordered](value T) Endpoint[T] {
	return Endpoint[T]{
		value:     value,
		boundType: BoundTypeOpen,
	}
}

// NewClosedEndpoint creates an Endpoint that includes the given value.
func NewClosedEndpoint[T constraints.Ordered](value T) Endpoint[T] {
	return Endpoint[T]{
		value:     value,
		boundType: BoundTypeClosed,
	}
}

// NewUnboundedEndpoint creates an Endpoint without a value that extends indefinitely.
func NewUnboundedEndpoint[T constraints.Ordered]() Endpoint[T] {
	return Endpoint[T]{
		boundType: BoundTypeUnbounded,
	}
}

// BoundType returns the kind of the Endpoint.
func (e Endpoint[T]) BoundType() BoundType {
	return e.boundType
}

// Value returns the value of the Endpoint together with a boolean flag that is false if the Endpoint is unbounded.
func (e Endpoint[T]) Value() (value T, exists bool) {
	return e.value, e.boundType != BoundTypeUnbounded
}

// IsBounded returns true if the Endpoint carries a value.
func (e Endpoint[T]) IsBounded() bool {
	return e.boundType != BoundTypeUnbounded
}

// Equal returns true if the Endpoint is identical to the given other Endpoint.
func (e Endpoint[T]) Equal(other Endpoint[T]) bool {
	if e.boundType != other.boundType {
		return false
	}

	return e.boundType == BoundTypeUnbounded || e.value == other.value
}

// String returns a human-readable version of the Endpoint.
func (e Endpoint[T]) String() string {
	if e.boundType == BoundTypeUnbounded {
		return stringify.Struct("Endpoint",
			stringify.NewStructField("BoundType", e.boundType),
		)
	}

	return stringify.Struct("Endpoint",
		stringify.NewStructField("BoundType", e.boundType),
		stringify.NewStructField("Value", e.value),
	)
}

// inverted returns a copy of the Endpoint with an open bound turned closed and vice versa. It is used to derive the
// edge of a gap from the edge of an adjacent interval when complementing a Set.
func (e Endpoint[T]) inverted() Endpoint[T] {
	switch e.boundType {
	case BoundTypeOpen:
		return NewClosedEndpoint(e.value)
	case BoundTypeClosed:
		return NewOpenEndpoint(e.value)
	default:
		return e
	}
}
