package section

import "math"

// Compute returns area, second moment of area and extreme fibre distance
// for the given shape. Missing dimensions fall back to nominal values, so
// the result is never degenerate.
func Compute(shape Shape, d Dimensions) Properties {
	var p Properties

	switch shape {
	case Rectangle:
		b := orDefault(d.Width, DefaultWidth)
		h := orDefault(d.Height, DefaultHeight)
		p.Area = b * h
		p.I = b * math.Pow(h, 3) / 12
		p.C = h / 2

	case Circle:
		r := orDefault(d.Diameter, DefaultDiameter) / 2
		p.Area = math.Pi * r * r
		p.I = math.Pi * math.Pow(r, 4) / 4
		p.C = r

	case HollowCircle:
		ro := orDefault(d.OuterDiameter, DefaultOuterDiameter) / 2
		ri := orDefault(d.InnerDiameter, DefaultInnerDiameter) / 2
		p.Area = math.Pi * (ro*ro - ri*ri)
		p.I = math.Pi * (math.Pow(ro, 4) - math.Pow(ri, 4)) / 4
		p.C = ro

	case IBeam:
		bf := orDefault(d.FlangeWidth, DefaultFlangeWidth)
		tf := orDefault(d.FlangeThickness, DefaultFlangeThickness)
		hw := orDefault(d.WebHeight, DefaultWebHeight)
		tw := orDefault(d.WebThickness, DefaultWebThickness)

		// Parallel axis theorem for both flanges
		offset := hw/2 + tf/2
		iFlanges := 2 * (bf*math.Pow(tf, 3)/12 + bf*tf*offset*offset)
		iWeb := tw * math.Pow(hw, 3) / 12

		p.Area = 2*bf*tf + hw*tw
		p.I = iFlanges + iWeb
		p.C = (hw + 2*tf) / 2
	}

	// Keep stress division well-defined
	if p.I == 0 {
		p.I = MinProperty
	}
	if p.C == 0 {
		p.C = MinProperty
	}

	return p
}

// SectionModulus returns the elastic section modulus S = I/c (m³)
func (p Properties) SectionModulus() float64 {
	return p.I / p.C
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
