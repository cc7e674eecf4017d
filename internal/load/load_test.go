package load

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	loads := []Load{
		Point{ID: "p"},
		UDL{ID: "u"},
		Triangular{ID: "t"},
	}
	want := []Kind{KindPoint, KindUDL, KindTriangular}

	for i, l := range loads {
		assert.Equal(t, want[i], l.Kind())
	}
	assert.Equal(t, "u", loads[1].Identifier())
}

func TestResultants(t *testing.T) {
	u := UDL{Start: 1, End: 4, Magnitude: 2}
	assert.InDelta(t, 6.0, u.Total(), 1e-12)
	assert.InDelta(t, 2.5, u.Centroid(), 1e-12)

	// Right-angled triangle rising to 6 kN/m over 3 m
	tr := Triangular{Start: 1, End: 4, StartMagnitude: 0, EndMagnitude: 6}
	assert.InDelta(t, 9.0, tr.Total(), 1e-12)
	assert.InDelta(t, 3.0, tr.Centroid(), 1e-12)

	// Equal magnitudes behave like a UDL
	flat := Triangular{Start: 1, End: 4, StartMagnitude: 2, EndMagnitude: 2}
	assert.InDelta(t, u.Total(), flat.Total(), 1e-12)
	assert.InDelta(t, u.Centroid(), flat.Centroid(), 1e-12)

	zero := Triangular{Start: 2, End: 3}
	assert.Equal(t, 2.0, zero.Centroid())
}

func TestValidate(t *testing.T) {
	const span = 5.0

	tests := []struct {
		name    string
		load    Load
		wantErr bool
	}{
		{"point inside", Point{ID: "a", Position: 2.5, Magnitude: 10}, false},
		{"point at ends", Point{ID: "b", Position: span, Magnitude: 10}, false},
		{"point beyond span", Point{ID: "c", Position: 5.1, Magnitude: 10}, true},
		{"point negative", Point{ID: "d", Position: -0.1}, true},
		{"point NaN", Point{ID: "e", Position: math.NaN()}, true},
		{"udl full span", UDL{ID: "f", Start: 0, End: span, Magnitude: 1}, false},
		{"udl reversed", UDL{ID: "g", Start: 3, End: 2, Magnitude: 1}, true},
		{"udl past end", UDL{ID: "h", Start: 3, End: 6, Magnitude: 1}, true},
		{"udl zero length", UDL{ID: "i", Start: 2, End: 2, Magnitude: 1}, false},
		{"triangular ok", Triangular{ID: "j", Start: 1, End: 4, EndMagnitude: 3}, false},
		{"triangular inf", Triangular{ID: "k", Start: 1, End: 4, EndMagnitude: math.Inf(1)}, true},
		{"triangular before start", Triangular{ID: "l", Start: -1, End: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.load.Validate(span)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.load.Identifier(), verr.ID)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Msg: "bad"}
	assert.Equal(t, "invalid load: bad", err.Error())

	err = &ValidationError{ID: "p1", Msg: "bad"}
	assert.Equal(t, "invalid load p1: bad", err.Error())
}

func TestScale(t *testing.T) {
	assert.Equal(t, Point{ID: "p", Position: 1, Magnitude: 15}, Scale(Point{ID: "p", Position: 1, Magnitude: 10}, 1.5))
	assert.Equal(t, UDL{ID: "u", Start: 0, End: 2, Magnitude: 2.4}, Scale(UDL{ID: "u", Start: 0, End: 2, Magnitude: 2}, 1.2))

	tr := Scale(Triangular{ID: "t", Start: 0, End: 2, StartMagnitude: 1, EndMagnitude: 3}, 2).(Triangular)
	assert.Equal(t, 2.0, tr.StartMagnitude)
	assert.Equal(t, 6.0, tr.EndMagnitude)
	assert.Equal(t, "t", tr.ID)
}
