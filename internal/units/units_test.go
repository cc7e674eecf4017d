package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allQuantities = []Quantity{
	Length, Section, Force, Moment, Distributed,
	Stress, Deflection, Area, Inertia, Modulus,
}

func TestSIIsIdentity(t *testing.T) {
	for _, q := range allQuantities {
		assert.Equal(t, 12.5, ToDisplay(12.5, q, SI))
		assert.Equal(t, 12.5, FromDisplay(12.5, q, SI))
	}
}

func TestImperialRoundTrip(t *testing.T) {
	for _, q := range allQuantities {
		t.Run(string(q), func(t *testing.T) {
			v := ToDisplay(3.7, q, Imperial)
			assert.NotEqual(t, 3.7, v)
			assert.InDelta(t, 3.7, FromDisplay(v, q, Imperial), 1e-12)
		})
	}
}

func TestImperialFactors(t *testing.T) {
	assert.InDelta(t, 32.8084, ToDisplay(10, Length, Imperial), 1e-9)
	assert.InDelta(t, 22.4809, ToDisplay(100, Force, Imperial), 1e-9)
	assert.InDelta(t, 36.2595, ToDisplay(250, Stress, Imperial), 1e-9)
	assert.InDelta(t, 29007.6, ToDisplay(200, Modulus, Imperial), 1e-9)
}

func TestSymbols(t *testing.T) {
	for _, q := range allQuantities {
		assert.NotEmpty(t, Symbol(q, SI))
		assert.NotEmpty(t, Symbol(q, Imperial))
	}
	assert.Equal(t, "kN·m", Symbol(Moment, SI))
	assert.Equal(t, "k-ft", Symbol(Moment, Imperial))
	assert.Equal(t, "in", Symbol(Deflection, Imperial))
}

func TestParseSystem(t *testing.T) {
	tests := map[string]System{
		"":         SI,
		"SI":       SI,
		"metric":   SI,
		"Imperial": Imperial,
		"us":       Imperial,
	}
	for in, want := range tests {
		got, err := ParseSystem(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSystem("cubits")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "10.00 kN", Format(10, Force, SI, 2))
	assert.Equal(t, "2.25 kips", Format(10, Force, Imperial, 2))
}
