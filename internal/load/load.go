// Package load defines the loads that can be applied to a beam.
//
// A Load is one of Point, UDL or Triangular. The set is closed: only the
// types in this package implement Load, so a type switch over the three
// variants is exhaustive.
package load

import (
	"fmt"
	"math"
)

// Kind identifies a load variant
type Kind string

const (
	KindPoint      Kind = "point"
	KindUDL        Kind = "udl"
	KindTriangular Kind = "triangular"
)

// Load is a load applied to the beam.
// Positions are in m, magnitudes in kN (point) or kN/m (distributed).
type Load interface {
	Kind() Kind
	Identifier() string
	Validate(span float64) error
	isLoad()
}

// Point is a concentrated force at Position
type Point struct {
	ID        string
	Position  float64 // m
	Magnitude float64 // kN
}

// UDL is a uniformly distributed load between Start and End
type UDL struct {
	ID        string
	Start     float64 // m
	End       float64 // m
	Magnitude float64 // kN/m
}

// Triangular is a linearly varying load between Start and End.
// Equal magnitudes reduce it to a UDL; unequal ones give a trapezoid.
type Triangular struct {
	ID             string
	Start          float64 // m
	End            float64 // m
	StartMagnitude float64 // kN/m
	EndMagnitude   float64 // kN/m
}

func (Point) Kind() Kind      { return KindPoint }
func (UDL) Kind() Kind        { return KindUDL }
func (Triangular) Kind() Kind { return KindTriangular }

func (p Point) Identifier() string      { return p.ID }
func (u UDL) Identifier() string        { return u.ID }
func (t Triangular) Identifier() string { return t.ID }

func (Point) isLoad()      {}
func (UDL) isLoad()        {}
func (Triangular) isLoad() {}

// Length returns the loaded length (m)
func (u UDL) Length() float64 { return u.End - u.Start }

// Length returns the loaded length (m)
func (t Triangular) Length() float64 { return t.End - t.Start }

// Total returns the resultant force (kN)
func (u UDL) Total() float64 { return u.Magnitude * u.Length() }

// Total returns the resultant force (kN)
func (t Triangular) Total() float64 {
	return 0.5 * (t.StartMagnitude + t.EndMagnitude) * t.Length()
}

// Centroid returns the position of the resultant measured from x = 0 (m)
func (u UDL) Centroid() float64 { return u.Start + u.Length()/2 }

// Centroid returns the position of the resultant measured from x = 0 (m).
// A load with zero total intensity has its centroid at Start.
func (t Triangular) Centroid() float64 {
	sum := t.StartMagnitude + t.EndMagnitude
	if sum == 0 {
		return t.Start
	}
	return t.Start + t.Length()*(t.StartMagnitude+2*t.EndMagnitude)/(3*sum)
}

// ValidationError reports an invalid load
type ValidationError struct {
	ID  string
	Msg string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return "invalid load: " + e.Msg
	}
	return fmt.Sprintf("invalid load %s: %s", e.ID, e.Msg)
}

// Validate checks the position against the span
func (p Point) Validate(span float64) error {
	if !finite(p.Position, p.Magnitude) {
		return &ValidationError{ID: p.ID, Msg: "values must be finite"}
	}
	if p.Position < 0 || p.Position > span {
		return &ValidationError{ID: p.ID, Msg: fmt.Sprintf("position %.3f m outside span [0, %.3f]", p.Position, span)}
	}
	return nil
}

// Validate checks the interval against the span
func (u UDL) Validate(span float64) error {
	if !finite(u.Start, u.End, u.Magnitude) {
		return &ValidationError{ID: u.ID, Msg: "values must be finite"}
	}
	return validateInterval(u.ID, u.Start, u.End, span)
}

// Validate checks the interval against the span
func (t Triangular) Validate(span float64) error {
	if !finite(t.Start, t.End, t.StartMagnitude, t.EndMagnitude) {
		return &ValidationError{ID: t.ID, Msg: "values must be finite"}
	}
	return validateInterval(t.ID, t.Start, t.End, span)
}

func validateInterval(id string, start, end, span float64) error {
	if start > end {
		return &ValidationError{ID: id, Msg: fmt.Sprintf("start %.3f m is after end %.3f m", start, end)}
	}
	if start < 0 || end > span {
		return &ValidationError{ID: id, Msg: fmt.Sprintf("interval [%.3f, %.3f] m outside span [0, %.3f]", start, end, span)}
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Scale returns a copy of l with every magnitude multiplied by f
func Scale(l Load, f float64) Load {
	switch ld := l.(type) {
	case Point:
		ld.Magnitude *= f
		return ld
	case UDL:
		ld.Magnitude *= f
		return ld
	case Triangular:
		ld.StartMagnitude *= f
		ld.EndMagnitude *= f
		return ld
	}
	return l
}
