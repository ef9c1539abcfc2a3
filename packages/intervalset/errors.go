package intervalset

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInterval is returned if the endpoints of an interval violate the ordering constraint.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrMergeSeparatedIntervals is returned if a merge is requested between two intervals with a gap between them.
	ErrMergeSeparatedIntervals = errors.New("separated intervals cannot be merged")
)
