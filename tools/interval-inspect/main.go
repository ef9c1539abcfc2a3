package main

import (
	"fmt"
	"log"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/interval.go/packages/intervalset"
)

func main() {
	aLow := flag.Int("a-low", 0, "low bound of interval A")
	aHigh := flag.Int("a-high", 4, "high bound of interval A")
	aShape := flag.String("a-shape", "open", "shape of interval A: open, closed, open-closed, closed-open")
	bLow := flag.Int("b-low", 2, "low bound of interval B")
	bHigh := flag.Int("b-high", 6, "high bound of interval B")
	bShape := flag.String("b-shape", "closed", "shape of interval B: open, closed, open-closed, closed-open")
	flag.Parse()

	a, err := buildInterval(*aShape, *aLow, *aHigh)
	if err != nil {
		log.Fatalf("interval A: %v", err)
	}
	b, err := buildInterval(*bShape, *bLow, *bHigh)
	if err != nil {
		log.Fatalf("interval B: %v", err)
	}

	fmt.Printf("A = %s\n", a)
	fmt.Printf("B = %s\n", b)
	fmt.Printf("A separated from B: %t\n", a.IsSeparatedFrom(b))

	if merged, mergeErr := a.Merge(b); mergeErr != nil {
		fmt.Printf("A merged with B: %v\n", mergeErr)
	} else {
		fmt.Printf("A merged with B: %s\n", merged)
	}

	setA, setB := intervalset.NewSet(a), intervalset.NewSet(b)
	fmt.Printf("A ∪ B = %s\n", setA.Union(setB))
	fmt.Printf("A ∩ B = %s\n", setA.Intersect(setB))
	fmt.Printf("A \\ B = %s\n", setA.Difference(setB))
	fmt.Printf("¬A    = %s\n", setA.Complement())
}

func buildInterval(shape string, low int, high int) (intervalset.Interval[int], error) {
	switch shape {
	case "open":
		return intervalset.Open(low, high)
	case "closed":
		return intervalset.Closed(low, high)
	case "open-closed":
		return intervalset.OpenClosed(low, high)
	case "closed-open":
		return intervalset.ClosedOpen(low, high)
	default:
		return intervalset.Interval[int]{}, errors.Errorf("unknown interval shape %q", shape)
	}
}
