package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	require.Equal(t, 5, s.Len())
	assert.Equal(t, values, s.Values)
}

func TestFloat32RoundTrip(t *testing.T) {
	buf := []float32{1.5, -2.25, 0, 100}
	s := FromFloat32(buf)

	require.Equal(t, len(buf), s.Len())
	for i, v := range buf {
		assert.Equal(t, float64(v), s.Values[i])
	}

	assert.Equal(t, buf, s.Float32())
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, New(tt.values).Mean(), 1e-10)
		})
	}
}

func TestVariance(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 4.571428571428571, s.Variance(), 1e-10)
	assert.InDelta(t, math.Sqrt(4.571428571428571), s.Std(), 1e-10)
}

func TestMinMax(t *testing.T) {
	s := New([]float64{5, 2, 8, 1, 9, 3})
	assert.Equal(t, 1.0, s.Min())
	assert.Equal(t, 9.0, s.Max())
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"odd", []float64{1, 3, 5}, 3.0},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{5}, 5.0},
		{"unsorted", []float64{5, 1, 3}, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, New(tt.values).Median(), 1e-10)
		})
	}
}

func TestLag(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	lagged := s.Lag(2)

	assert.Equal(t, []float64{1, 2, 3}, lagged.Values)

	assert.Empty(t, s.Lag(0).Values)
	assert.Empty(t, s.Lag(5).Values)
}

func TestSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})

	assert.Equal(t, []float64{2, 3, 4}, s.Slice(1, 4).Values)
	assert.Equal(t, []float64{1, 2}, s.Slice(-3, 2).Values)
	assert.Equal(t, []float64{4, 5}, s.Slice(3, 99).Values)
	assert.Empty(t, s.Slice(3, 3).Values)
}

func TestCopyIsIndependent(t *testing.T) {
	s := New([]float64{1, 2, 3})
	c := s.Copy()

	c.Values[0] = 99
	assert.Equal(t, 1.0, s.Values[0])
}

func TestNormalize(t *testing.T) {
	s := New([]float64{2, 4, 6, 8})
	normalized := s.Normalize()

	assert.InDelta(t, 0, New(normalized.Values).Mean(), 1e-10)
	assert.InDelta(t, 1, New(normalized.Values).Std(), 1e-10)

	// Zero variance: identity copy.
	flat := New([]float64{3, 3, 3}).Normalize()
	assert.Equal(t, []float64{3, 3, 3}, flat.Values)
}
