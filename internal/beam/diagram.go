package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/load"
)

type diagrams struct {
	shear  []Sample
	moment []Sample

	maxShear, maxShearAt   float64
	maxMoment, maxMomentAt float64
}

// sampleDiagrams evaluates shear and moment at n+1 equally spaced
// stations. Each load contributes only once the cut has reached it.
func sampleDiagrams(cfg Config, loads []load.Load, r reactions, n int) (diagrams, error) {
	d := diagrams{
		shear:  make([]Sample, 0, n+1),
		moment: make([]Sample, 0, n+1),
	}
	L := cfg.Length

	for i := 0; i <= n; i++ {
		x := float64(i) / float64(n) * L

		v := r.r1
		m := r.r1 * x
		if cfg.Support == Cantilever || cfg.Support == FixedFixed {
			// Hogging fixing moment at the left end
			m -= r.m1
		}

		for _, l := range loads {
			dv, dm, err := cutContribution(l, x)
			if err != nil {
				return d, err
			}
			v -= dv
			m -= dm
		}

		vk, mk := v/1000, m/1000
		d.shear = append(d.shear, Sample{X: x, Value: vk})
		d.moment = append(d.moment, Sample{X: x, Value: mk})

		if math.Abs(vk) > math.Abs(d.maxShear) {
			d.maxShear, d.maxShearAt = vk, x
		}
		if math.Abs(mk) > math.Abs(d.maxMoment) {
			d.maxMoment, d.maxMomentAt = mk, x
		}
	}

	return d, nil
}

// cutContribution returns the shear (N) and moment (N·m) of the part of
// load l lying to the left of a cut at x
func cutContribution(l load.Load, x float64) (v, m float64, err error) {
	switch ld := l.(type) {
	case load.Point:
		if x >= ld.Position {
			p := ld.Magnitude * 1000
			return p, p * (x - ld.Position), nil
		}

	case load.UDL:
		if x > ld.Start {
			w := ld.Magnitude * 1000
			eff := math.Min(x, ld.End) - ld.Start
			p := w * eff
			return p, p * (x - (ld.Start + eff/2)), nil
		}

	case load.Triangular:
		length := ld.Length()
		if x > ld.Start && length > 0 {
			w1 := ld.StartMagnitude * 1000
			w2 := ld.EndMagnitude * 1000

			eff := math.Min(x, ld.End) - ld.Start
			wx := w1 + (w2-w1)*(eff/length)
			p := 0.5 * (w1 + wx) * eff

			if x <= ld.End {
				return p, eff * eff * (2*w1 + wx) / 6, nil
			}
			// Whole load is behind the cut
			aboutEnd := length * length * (2*w1 + w2) / 6
			return p, aboutEnd + p*(x-ld.End), nil
		}

	default:
		return 0, 0, fmt.Errorf("unsupported load type %T", l)
	}

	return 0, 0, nil
}
