package section

import "fmt"

// Shape identifies a cross-section type
type Shape string

const (
	Rectangle    Shape = "rectangle"
	Circle       Shape = "circle"
	HollowCircle Shape = "hollow-circle"
	IBeam        Shape = "i-beam"
)

// Shapes lists the supported cross-sections
var Shapes = []Shape{Rectangle, Circle, HollowCircle, IBeam}

// ParseShape maps a name to a supported shape
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes {
		if string(s) == name {
			return s, nil
		}
	}
	return "", &ValidationError{msg: fmt.Sprintf("unknown section type %q", name)}
}

// Dimensions holds the raw section dimensions (m).
// A zero field means "not given" and is replaced by a nominal value.
type Dimensions struct {
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`

	Diameter float64 `json:"diameter,omitempty" yaml:"diameter,omitempty"`

	OuterDiameter float64 `json:"outer_diameter,omitempty" yaml:"outer_diameter,omitempty"`
	InnerDiameter float64 `json:"inner_diameter,omitempty" yaml:"inner_diameter,omitempty"`

	// I-beam
	FlangeWidth     float64 `json:"flange_width,omitempty" yaml:"flange_width,omitempty"`
	FlangeThickness float64 `json:"flange_thickness,omitempty" yaml:"flange_thickness,omitempty"`
	WebHeight       float64 `json:"web_height,omitempty" yaml:"web_height,omitempty"`
	WebThickness    float64 `json:"web_thickness,omitempty" yaml:"web_thickness,omitempty"`
}

// Nominal dimensions substituted for missing values (m)
const (
	DefaultWidth           = 0.1
	DefaultHeight          = 0.1
	DefaultDiameter        = 0.1
	DefaultOuterDiameter   = 0.1
	DefaultInnerDiameter   = 0.08
	DefaultFlangeWidth     = 0.1
	DefaultFlangeThickness = 0.01
	DefaultWebHeight       = 0.2
	DefaultWebThickness    = 0.01
)

// MinProperty is the floor applied to a zero I or c
const MinProperty = 0.00001

// Properties holds derived geometric properties of a section
type Properties struct {
	Area float64 `json:"area"` // m²
	I    float64 `json:"i"`    // Second moment of area (m⁴)
	C    float64 `json:"c"`    // Extreme fibre distance (m)
}

// ValidationError represents a section input error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
