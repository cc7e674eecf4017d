package beam

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/load"
)

// equivalent is the resultant of all loads: total vertical force (N) and
// its first moment about x = 0 (N·m)
type equivalent struct {
	force  float64
	moment float64
}

// reactions in N and N·m
type reactions struct {
	r1, r2 float64
	m1, m2 float64
}

func sumLoads(loads []load.Load) (equivalent, error) {
	var eq equivalent

	for _, l := range loads {
		switch ld := l.(type) {
		case load.Point:
			p := ld.Magnitude * 1000
			eq.force += p
			eq.moment += p * ld.Position

		case load.UDL:
			total := ld.Total() * 1000
			eq.force += total
			eq.moment += total * ld.Centroid()

		case load.Triangular:
			length := ld.Length()
			w1 := ld.StartMagnitude * 1000
			w2 := ld.EndMagnitude * 1000
			total := 0.5 * (w1 + w2) * length

			// First moment of the trapezoid about its own start
			aboutStart := length * length * (w1 + 2*w2) / 6

			eq.force += total
			eq.moment += aboutStart + total*ld.Start

		default:
			return eq, fmt.Errorf("unsupported load type %T", l)
		}
	}

	return eq, nil
}

func solveReactions(cfg Config, loads []load.Load, eq equivalent) (reactions, error) {
	var r reactions
	L := cfg.Length

	switch cfg.Support {
	case SimplySupported:
		// Moments about the left support
		r.r2 = eq.moment / L
		r.r1 = eq.force - r.r2

	case Cantilever:
		r.r1 = eq.force
		r.m1 = eq.moment

	case FixedFixed:
		left, right, err := fixedEndMoments(L, loads)
		if err != nil {
			return r, err
		}
		r.m1 = left
		r.m2 = right

		r1Simple := eq.force - eq.moment/L
		r.r1 = r1Simple + (left-right)/L
		r.r2 = eq.force - r.r1

	default:
		return r, fmt.Errorf("unknown support type %q", cfg.Support)
	}

	return r, nil
}

// fixedEndMoments sums the hogging moments at both ends of a fixed-fixed
// span. Distributed loads are replaced by their resultant acting at the
// centroid, which is exact only for point loads.
func fixedEndMoments(span float64, loads []load.Load) (left, right float64, err error) {
	for _, l := range loads {
		var p, a float64

		switch ld := l.(type) {
		case load.Point:
			p, a = ld.Magnitude*1000, ld.Position
		case load.UDL:
			p, a = ld.Total()*1000, ld.Centroid()
		case load.Triangular:
			p, a = ld.Total()*1000, ld.Centroid()
		default:
			return 0, 0, fmt.Errorf("unsupported load type %T", l)
		}

		ml, mr := pointFEM(span, p, a)
		left += ml
		right += mr
	}
	return left, right, nil
}

// pointFEM returns the fixed-end moments of a point load p at distance a
// from the left end: Pab²/L² and Pa²b/L²
func pointFEM(span, p, a float64) (left, right float64) {
	b := span - a
	L2 := span * span
	return p * a * b * b / L2, p * a * a * b / L2
}
