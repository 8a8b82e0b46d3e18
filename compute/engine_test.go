package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/hydrokit/goarma/arena"
	"github.com/hydrokit/goarma/arma"
	"github.com/hydrokit/goarma/stats"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(&Config{Logger: zaptest.NewLogger(t).Sugar()})
}

// genAR1f32 generates a deterministic AR(1) series in the boundary's float32
// element format.
func genAR1f32(phi0, sigma float64, n int, seed uint64) []float32 {
	s := seed
	x := make([]float64, n)
	out := make([]float32, n)
	for i := 1; i < n; i++ {
		s = s*6364136223846793005 + 1442695040888963407
		u := float64(s>>11)/float64(1<<53) - 0.5
		x[i] = phi0*x[i-1] + sigma*u
		out[i] = float32(x[i])
	}
	return out
}

func (e *Engine) mustBuffers(t *testing.T, n int) (in, out arena.Handle) {
	t.Helper()
	in, err := e.Alloc(n)
	require.NoError(t, err)
	out, err = e.Alloc(n)
	require.NoError(t, err)
	return in, out
}

func TestCallACF(t *testing.T) {
	eng := newTestEngine(t)
	in, out := eng.mustBuffers(t, 5)

	require.NoError(t, eng.Write(in, []float32{1, 2, 3, 4, 5}))
	require.NoError(t, eng.Call("acf", in, out, 5))

	result, err := eng.Read(out)
	require.NoError(t, err)
	require.Len(t, result, 5)
	assert.InDelta(t, 0.5, result[0], 1e-6, "halved lag-0 entry")
}

func TestCallLinearDetrend(t *testing.T) {
	eng := newTestEngine(t)

	n := 64
	values := make([]float32, n)
	for i := range values {
		values[i] = float32(2.5*float64(i) + 10)
	}

	in, out := eng.mustBuffers(t, n)
	require.NoError(t, eng.Write(in, values))
	require.NoError(t, eng.Call("linear_detrend", in, out, n))

	result, err := eng.Read(out)
	require.NoError(t, err)
	for i, v := range result {
		assert.InDelta(t, 0, v, 1e-4, "residual at index %d", i)
	}
}

func TestCallBoxCox(t *testing.T) {
	eng := newTestEngine(t)
	in, out := eng.mustBuffers(t, 3)

	require.NoError(t, eng.Write(in, []float32{4, 9, 16}))
	require.NoError(t, eng.Call("boxcox", in, out, 3))

	result, err := eng.Read(out)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, result[0], 1e-6)
	assert.InDelta(t, 4.0, result[1], 1e-6)
	assert.InDelta(t, 6.0, result[2], 1e-6)
}

func TestBoxCoxLambdaOverride(t *testing.T) {
	eng := newTestEngine(t)
	in, out := eng.mustBuffers(t, 2)

	require.NoError(t, eng.Write(in, []float32{1, 2}))
	require.NoError(t, eng.BoxCoxLambda(in, out, 2, 1))

	result, err := eng.Read(out)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, result[0], 1e-6) // (1 - 1) / 1
	assert.InDelta(t, 1.0, result[1], 1e-6) // (2 - 1) / 1
}

func TestCallPACF(t *testing.T) {
	eng := newTestEngine(t)

	n := 40
	values := make([]float32, n)
	for i := 1; i < n; i++ {
		values[i] = float32(0.6*float64(values[i-1]) + float64(i%7-3)/7)
	}

	in, out := eng.mustBuffers(t, n)
	require.NoError(t, eng.Write(in, values))

	result, err := eng.PACF(in, out, n)
	require.NoError(t, err)
	for _, score := range result.AIC {
		assert.LessOrEqual(t, result.AIC[result.SelectedLag], score)
	}

	coeffs, err := eng.Read(out)
	require.NoError(t, err)
	require.Len(t, coeffs, n)

	require.NoError(t, eng.Call("pacf", in, out, n))
}

func TestARMAFitAutoThroughBoundary(t *testing.T) {
	eng := newTestEngine(t)

	n := 20000
	values := genAR1f32(0.8, 0.05, n, 42)

	in, out := eng.mustBuffers(t, n)
	require.NoError(t, eng.Write(in, values))

	result, err := eng.ARMAFitAuto(in, out, n)
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.InDelta(t, 0.8, result.Params.Phi, 1e-2)

	forecast, err := eng.Read(out)
	require.NoError(t, err)
	require.Len(t, forecast, n)
	assert.Zero(t, forecast[0], "forecast index 0 is never written")
}

func TestARMAFitFixedByteLength(t *testing.T) {
	eng := newTestEngine(t)
	in, out := eng.mustBuffers(t, 5)

	require.NoError(t, eng.Write(in, []float32{1, 2, 3, 4, 5}))

	// The historical symbol takes a byte length: 5 elements = 20 bytes.
	require.NoError(t, eng.Call("arma_fit_fixed", in, out, 20))

	result, err := eng.Read(out)
	require.NoError(t, err)

	expected := []float32{0, 3.28, 3.84, 4.4, 4.96}
	for i, want := range expected {
		assert.InDelta(t, want, result[i], 1e-5, "forecast at %d", i)
	}
}

func TestFitFixedElementCountMatchesByteForm(t *testing.T) {
	eng := newTestEngine(t)
	in, out := eng.mustBuffers(t, 5)
	require.NoError(t, eng.Write(in, []float32{1, 2, 3, 4, 5}))

	require.NoError(t, eng.ARMAFitFixed(in, out, 5))
	direct, err := eng.Read(out)
	require.NoError(t, err)

	require.NoError(t, eng.ARMAFitFixedBytes(in, out, 20))
	viaBytes, err := eng.Read(out)
	require.NoError(t, err)

	assert.Equal(t, direct, viaBytes)
}

func TestCallUnknownSymbol(t *testing.T) {
	eng := newTestEngine(t)
	in, out := eng.mustBuffers(t, 4)

	err := eng.Call("arima_autoParams", in, out, 4)
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestSymbolsAllDispatch(t *testing.T) {
	eng := newTestEngine(t)

	n := 32
	values := make([]float32, n)
	for i := 1; i < n; i++ {
		values[i] = float32(0.5*float64(values[i-1])+float64(i%9-4)/9) + 10
	}

	in, out := eng.mustBuffers(t, n)
	require.NoError(t, eng.Write(in, values))

	for _, sym := range eng.Symbols() {
		arg := n
		if sym == "arma_fit_fixed" {
			arg = n * 4
		}
		assert.NoError(t, eng.Call(sym, in, out, arg), "symbol %s", sym)
	}
}

func TestArgumentValidation(t *testing.T) {
	eng := newTestEngine(t)
	in, out := eng.mustBuffers(t, 8)

	err := eng.ACF(in, out, 0)
	assert.ErrorIs(t, err, ErrBadElementCount)

	err = eng.ACF(in, out, 9)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	// Output buffer shorter than the result.
	small, err := eng.Alloc(4)
	require.NoError(t, err)
	require.NoError(t, eng.Write(in, []float32{1, 2, 3, 4, 5, 6, 7, 8}))
	err = eng.ACF(in, small, 8)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	err = eng.Write(in, make([]float32, 9))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestReleasedBufferRejected(t *testing.T) {
	eng := newTestEngine(t)
	in, out := eng.mustBuffers(t, 4)

	require.NoError(t, eng.Release(in))

	err := eng.Call("acf", in, out, 4)
	assert.ErrorIs(t, err, arena.ErrBadHandle)
	assert.ErrorIs(t, eng.Release(in), arena.ErrBadHandle)
}

func TestDegenerateInputSurfacesError(t *testing.T) {
	eng := newTestEngine(t)
	in, out := eng.mustBuffers(t, 6)

	// Constant series: zero variance.
	require.NoError(t, eng.Write(in, []float32{7, 7, 7, 7, 7, 7}))
	err := eng.ACF(in, out, 6)
	assert.ErrorIs(t, err, stats.ErrDegenerate)
}

func TestEngineArenaLimit(t *testing.T) {
	eng := New(&Config{ArenaLimit: 64})

	h, err := eng.Alloc(16) // 64 bytes
	require.NoError(t, err)

	_, err = eng.Alloc(1)
	assert.ErrorIs(t, err, arena.ErrOutOfMemory)

	require.NoError(t, eng.Release(h))
	assert.Zero(t, eng.Arena().Outstanding())
}

func TestEngineFitConfigPropagates(t *testing.T) {
	eng := New(&Config{
		Fit:    &arma.Config{MaxIterations: 2, Tolerance: 1e-6},
		Logger: zaptest.NewLogger(t).Sugar(),
	})

	n := 500
	values := genAR1f32(0.8, 0.05, n, 7)

	in, out := eng.mustBuffers(t, n)
	require.NoError(t, eng.Write(in, values))

	result, err := eng.ARMAFitAuto(in, out, n)
	require.NoError(t, err)
	assert.False(t, result.Converged)
	assert.Equal(t, 2, result.Iterations)
}
