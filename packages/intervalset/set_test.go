package intervalset

import (
	"math/rand"
	"testing"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireCanonical asserts the canonical form invariant: sorted ascending with every adjacent pair separated.
func requireCanonical[T constraints.Ordered](t *testing.T, set *Set[T]) {
	t.Helper()

	for k := 0; k+1 < len(set.intervals); k++ {
		require.True(t, set.intervals[k].IsSeparatedFrom(set.intervals[k+1]),
			"%s is not separated from %s", set.intervals[k], set.intervals[k+1])
		require.True(t, set.intervals[k+1].isOtherSeparatedToTheLeft(set.intervals[k]),
			"%s is not below %s", set.intervals[k], set.intervals[k+1])
	}
}

func TestNewSet(t *testing.T) {
	empty := NewSet[int]()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Size())

	set := NewSet(
		lo.PanicOnErr(Open(0, 1)),
		lo.PanicOnErr(ClosedOpen(1, 2)),
		lo.PanicOnErr(Open(5, 6)),
	)
	requireCanonical(t, set)
	assert.Equal(t, 2, set.Size())
	assert.True(t, set.Intervals()[0].Equal(lo.PanicOnErr(Open(0, 2))))
	assert.True(t, set.Intervals()[1].Equal(lo.PanicOnErr(Open(5, 6))))

	assert.True(t, NewSet(Universe[int]()).IsUniverse())
}

func TestUnionInterval(t *testing.T) {
	set := NewSet(lo.PanicOnErr(Open(0, 1)), lo.PanicOnErr(Open(4, 5)))

	// insertion below, above and in between keeps the sequence sorted
	below := set.UnionInterval(lo.PanicOnErr(Closed(-3, -2)))
	requireCanonical(t, below)
	assert.Equal(t, 3, below.Size())
	assert.True(t, below.Intervals()[0].Equal(lo.PanicOnErr(Closed(-3, -2))))

	above := set.UnionInterval(lo.PanicOnErr(Closed(7, 8)))
	requireCanonical(t, above)
	assert.Equal(t, 3, above.Size())
	assert.True(t, above.Intervals()[2].Equal(lo.PanicOnErr(Closed(7, 8))))

	between := set.UnionInterval(lo.PanicOnErr(Closed(2, 3)))
	requireCanonical(t, between)
	assert.Equal(t, 3, between.Size())
	assert.True(t, between.Intervals()[1].Equal(lo.PanicOnErr(Closed(2, 3))))

	// a bridging interval folds the whole run into one
	bridged := set.UnionInterval(lo.PanicOnErr(Closed(1, 4)))
	requireCanonical(t, bridged)
	assert.Equal(t, 1, bridged.Size())
	assert.True(t, bridged.Intervals()[0].Equal(lo.PanicOnErr(Open(0, 5))))

	// the original set is never mutated
	assert.Equal(t, 2, set.Size())
}

func TestUnion(t *testing.T) {
	a := NewSet(lo.PanicOnErr(Open(0, 2)), lo.PanicOnErr(Closed(5, 6)))
	b := NewSet(lo.PanicOnErr(Closed(2, 3)), lo.PanicOnErr(Open(7, 8)))

	union := a.Union(b)
	requireCanonical(t, union)
	assert.Equal(t, 3, union.Size())
	assert.True(t, union.Intervals()[0].Equal(lo.PanicOnErr(OpenClosed(0, 3))))
	assert.True(t, union.Equal(b.Union(a)))
	assert.True(t, union.Equal(a.Or(b)))

	assert.True(t, a.Union(NewSet(Universe[int]())).IsUniverse())
	assert.True(t, a.Union(NewSet[int]()).Equal(a))
}

func TestIntersect(t *testing.T) {
	a := NewSet(lo.PanicOnErr(Open(0, 4)), lo.PanicOnErr(Closed(6, 8)))
	b := NewSet(lo.PanicOnErr(Closed(2, 7)))

	intersection := a.Intersect(b)
	requireCanonical(t, intersection)
	assert.Equal(t, 2, intersection.Size())
	assert.True(t, intersection.Intervals()[0].Equal(lo.PanicOnErr(ClosedOpen(2, 4))))
	assert.True(t, intersection.Intervals()[1].Equal(lo.PanicOnErr(Closed(6, 7))))
	assert.True(t, intersection.Equal(b.Intersect(a)))
	assert.True(t, intersection.Equal(a.And(b)))

	// touching intervals share no point
	touching := NewSet(lo.PanicOnErr(Open(0, 1))).Intersect(NewSet(lo.PanicOnErr(Closed(1, 2))))
	assert.True(t, touching.IsEmpty())

	assert.True(t, a.Intersect(NewSet[int]()).IsEmpty())
	assert.True(t, a.Intersect(NewSet(Universe[int]())).Equal(a))
}

func TestComplement(t *testing.T) {
	assert.True(t, NewSet[int]().Complement().IsUniverse())
	assert.True(t, NewSet(Universe[int]()).Complement().IsEmpty())

	set := NewSet(lo.PanicOnErr(Open(0, 1)), lo.PanicOnErr(Closed(2, 3)))
	complement := set.Complement()
	requireCanonical(t, complement)
	assert.Equal(t, 3, complement.Size())
	assert.True(t, complement.Intervals()[0].Equal(UnboundedClosed(0)))
	assert.True(t, complement.Intervals()[1].Equal(lo.PanicOnErr(ClosedOpen(1, 2))))
	assert.True(t, complement.Intervals()[2].Equal(OpenUnbounded(3)))

	// complementing twice restores the set
	assert.True(t, complement.Complement().Equal(set))

	// the gap between two open bounds at the same value is a single point
	point := NewSet(UnboundedOpen(0), OpenUnbounded(0)).Complement()
	requireCanonical(t, point)
	assert.Equal(t, 1, point.Size())
	assert.True(t, point.Intervals()[0].Equal(lo.PanicOnErr(Closed(0, 0))))
}

func TestDifference(t *testing.T) {
	a := NewSet(lo.PanicOnErr(Closed(0, 10)))
	b := NewSet(lo.PanicOnErr(Open(2, 4)), lo.PanicOnErr(Closed(6, 7)))

	difference := a.Difference(b)
	requireCanonical(t, difference)
	assert.Equal(t, 3, difference.Size())
	assert.True(t, difference.Intervals()[0].Equal(lo.PanicOnErr(Closed(0, 2))))
	assert.True(t, difference.Intervals()[1].Equal(lo.PanicOnErr(ClosedOpen(4, 6))))
	assert.True(t, difference.Intervals()[2].Equal(lo.PanicOnErr(OpenClosed(7, 10))))

	assert.True(t, a.Difference(a).IsEmpty())
	assert.True(t, a.Difference(NewSet[int]()).Equal(a))
}

func TestSetContains(t *testing.T) {
	set := NewSet(lo.PanicOnErr(Open(0, 2)), lo.PanicOnErr(Closed(4, 5)))
	assert.False(t, set.Contains(0))
	assert.True(t, set.Contains(1))
	assert.False(t, set.Contains(3))
	assert.True(t, set.Contains(4))
	assert.True(t, set.Contains(5))
	assert.False(t, set.Contains(6))
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "∅", NewSet[int]().String())
	assert.Equal(t, "(-∞, +∞)", NewSet(Universe[int]()).Intervals()[0].String())
	assert.Equal(t, "{(0, 1), [2, 3]}", NewSet(lo.PanicOnErr(Open(0, 1)), lo.PanicOnErr(Closed(2, 3))).String())
	assert.Equal(t, "{[5]}", NewSet(lo.PanicOnErr(Closed(5, 5))).String())
}

// randomInterval draws a valid interval with bounds in [-8, 12] and a random shape.
func randomInterval(r *rand.Rand) Interval[int] {
	low := r.Intn(20) - 8
	high := low + 1 + r.Intn(4)

	switch r.Intn(8) {
	case 0:
		return lo.PanicOnErr(Open(low, high))
	case 1:
		return lo.PanicOnErr(Closed(low, high))
	case 2:
		return lo.PanicOnErr(OpenClosed(low, high))
	case 3:
		return lo.PanicOnErr(ClosedOpen(low, high))
	case 4:
		return lo.PanicOnErr(Closed(low, low))
	case 5:
		return UnboundedOpen(low)
	case 6:
		return ClosedUnbounded(high)
	default:
		return lo.PanicOnErr(Open(low, high))
	}
}

func randomSet(r *rand.Rand) *Set[int] {
	intervals := make([]Interval[int], 0, 4)
	for k := 0; k < 1+r.Intn(4); k++ {
		intervals = append(intervals, randomInterval(r))
	}

	return NewSet(intervals...)
}

// TestAlgebraAgainstMembership cross-checks the set algebra against point membership on randomized inputs.
func TestAlgebraAgainstMembership(t *testing.T) {
	r := rand.New(rand.NewSource(1337))

	for round := 0; round < 100; round++ {
		a := randomSet(r)
		b := randomSet(r)

		union := a.Union(b)
		intersection := a.Intersect(b)
		complement := a.Complement()
		difference := a.Difference(b)

		requireCanonical(t, union)
		requireCanonical(t, intersection)
		requireCanonical(t, complement)
		requireCanonical(t, difference)

		assert.True(t, union.Equal(b.Union(a)))
		assert.True(t, intersection.Equal(b.Intersect(a)))
		assert.True(t, complement.Complement().Equal(a))

		for value := -10; value <= 14; value++ {
			assert.Equal(t, a.Contains(value) || b.Contains(value), union.Contains(value), "union membership of %d", value)
			assert.Equal(t, a.Contains(value) && b.Contains(value), intersection.Contains(value), "intersection membership of %d", value)
			assert.Equal(t, !a.Contains(value), complement.Contains(value), "complement membership of %d", value)
			assert.Equal(t, a.Contains(value) && !b.Contains(value), difference.Contains(value), "difference membership of %d", value)
		}
	}
}

func TestAssociativity(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		a, b, c := randomSet(r), randomSet(r), randomSet(r)

		assert.True(t, a.Union(b).Union(c).Equal(a.Union(b.Union(c))))
		assert.True(t, a.Intersect(b).Intersect(c).Equal(a.Intersect(b.Intersect(c))))
	}
}

func BenchmarkUnionInterval(b *testing.B) {
	intervals := make([]Interval[int], 0, 1000)
	for k := 0; k < 1000; k++ {
		intervals = append(intervals, lo.PanicOnErr(Open(3*k, 3*k+2)))
	}
	set := NewSet(intervals...)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		set.UnionInterval(lo.PanicOnErr(Closed(1500, 1600)))
	}
}

func BenchmarkIntersect(b *testing.B) {
	intervalsA := make([]Interval[int], 0, 1000)
	intervalsB := make([]Interval[int], 0, 1000)
	for k := 0; k < 1000; k++ {
		intervalsA = append(intervalsA, lo.PanicOnErr(Open(3*k, 3*k+2)))
		intervalsB = append(intervalsB, lo.PanicOnErr(Closed(3*k+1, 3*k+3)))
	}
	a, bSet := NewSet(intervalsA...), NewSet(intervalsB...)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		a.Intersect(bSet)
	}
}
