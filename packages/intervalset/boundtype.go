package intervalset

import "strconv"

// BoundType indicates how an Endpoint terminates its side of an Interval: a closed bound contains its value, an open
// bound excludes it, and an unbounded side has no value at all and extends indefinitely.
type BoundType uint8

const (
	// BoundTypeOpen indicates that the Endpoint value is not considered part of the Interval ("exclusive").
	BoundTypeOpen BoundType = iota

	// BoundTypeClosed indicates that the Endpoint value is considered part of the Interval ("inclusive").
	BoundTypeClosed

	// BoundTypeUnbounded indicates that the Endpoint carries no value and the Interval extends indefinitely on that
	// side.
	BoundTypeUnbounded
)

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	switch b {
	case BoundTypeOpen:
		return "BoundTypeOpen"
	case BoundTypeClosed:
		return "BoundTypeClosed"
	case BoundTypeUnbounded:
		return "BoundTypeUnbounded"
	default:
		return "Unknown (" + strconv.Itoa(int(b)) + ")"
	}
}
