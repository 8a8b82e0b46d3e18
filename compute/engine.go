// Package compute exposes the numeric core as named entry points over float32 buffers.
package compute

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hydrokit/goarma/arena"
	"github.com/hydrokit/goarma/arma"
	"github.com/hydrokit/goarma/stats"
	"github.com/hydrokit/goarma/timeseries"
)

// elemSize is the byte width of one buffer element (float32).
const elemSize = 4

var (
	// ErrUnknownSymbol indicates a Call with an entry point name the engine
	// does not export.
	ErrUnknownSymbol = errors.New("compute: unknown entry point symbol")

	// ErrBadElementCount indicates a non-positive element count.
	ErrBadElementCount = errors.New("compute: element count must be positive")

	// ErrLengthMismatch indicates a buffer shorter than the element count
	// the caller passed for it.
	ErrLengthMismatch = errors.New("compute: buffer shorter than element count")
)

// Config holds engine settings.
type Config struct {
	ArenaLimit int                // Byte capacity for the engine's arena; 0 means unlimited.
	Fit        *arma.Config       // ARMA estimation settings (default: arma defaults).
	Lambda     float64            // Box-Cox exponent for the boxcox entry point (default: stats.DefaultLambda).
	Logger     *zap.SugaredLogger // Diagnostic logger (default: no-op).
}

// Engine owns an arena and dispatches named operations against buffers held
// in it. Every operation runs to completion within the call that invoked it;
// the engine keeps no state between calls beyond the arena contents.
//
// An Engine is not safe for concurrent use: the host must serialize calls
// against one instance or create one instance per concurrent caller.
type Engine struct {
	arena  *arena.Arena
	fit    *arma.Config
	lambda float64
	logger *zap.SugaredLogger
}

// New creates an engine. A nil config selects all defaults.
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	lambda := cfg.Lambda
	if lambda == 0 {
		lambda = stats.DefaultLambda
	}
	fit := cfg.Fit
	if fit == nil {
		fit = arma.DefaultConfig()
	}
	if fit.Logger == nil {
		fit.Logger = logger
	}
	return &Engine{
		arena:  arena.New(cfg.ArenaLimit),
		fit:    fit,
		lambda: lambda,
		logger: logger,
	}
}

// Arena returns the engine's arena for direct buffer management.
func (e *Engine) Arena() *arena.Arena {
	return e.arena
}

// Alloc reserves a buffer of elems float32 elements.
func (e *Engine) Alloc(elems int) (arena.Handle, error) {
	if elems <= 0 {
		return arena.Handle{}, ErrBadElementCount
	}
	return e.arena.Alloc(elems * elemSize)
}

// Write copies values into the buffer identified by h.
func (e *Engine) Write(h arena.Handle, values []float32) error {
	buf, err := e.arena.Float32(h)
	if err != nil {
		return err
	}
	if len(values) > len(buf) {
		return fmt.Errorf("%w: writing %d elements into %d", ErrLengthMismatch, len(values), len(buf))
	}
	copy(buf, values)
	return nil
}

// Read copies the buffer identified by h out of the arena.
func (e *Engine) Read(h arena.Handle) ([]float32, error) {
	buf, err := e.arena.Float32(h)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(buf))
	copy(out, buf)
	return out, nil
}

// Release returns the buffer identified by h to the arena.
func (e *Engine) Release(h arena.Handle) error {
	return e.arena.Release(h)
}

// LinearDetrend removes a linear trend from the first n elements of in and
// writes the detrended series to out.
func (e *Engine) LinearDetrend(in, out arena.Handle, n int) error {
	series, err := e.seriesIn(in, n)
	if err != nil {
		return err
	}
	detrended, err := stats.Detrend(series)
	if err != nil {
		return err
	}
	return e.writeOut(out, detrended.Values)
}

// ACF computes the full-lag autocorrelation function of the first n elements
// of in and writes the n coefficients to out.
func (e *Engine) ACF(in, out arena.Handle, n int) error {
	series, err := e.seriesIn(in, n)
	if err != nil {
		return err
	}
	acf, err := stats.ACF(series)
	if err != nil {
		return err
	}
	return e.writeOut(out, acf)
}

// PACF computes the partial autocorrelation function with AIC order
// selection, writes the n coefficients to out, and returns the full result
// including the selected lag. Coefficients beyond the selected lag retain
// exploratory values, per the stats package contract.
func (e *Engine) PACF(in, out arena.Handle, n int) (*stats.PACFResult, error) {
	series, err := e.seriesIn(in, n)
	if err != nil {
		return nil, err
	}
	result, err := stats.PACF(series)
	if err != nil {
		return nil, err
	}
	e.logger.Infow("pacf order selected", "lag", result.SelectedLag, "aic", result.AIC[result.SelectedLag])
	if err := e.writeOut(out, result.Coefficients); err != nil {
		return nil, err
	}
	return result, nil
}

// BoxCox applies the Box-Cox transform with the engine's configured lambda
// to the first n elements of in and writes the result to out.
func (e *Engine) BoxCox(in, out arena.Handle, n int) error {
	return e.BoxCoxLambda(in, out, n, e.lambda)
}

// BoxCoxLambda applies the Box-Cox transform with an explicit lambda.
func (e *Engine) BoxCoxLambda(in, out arena.Handle, n int, lambda float64) error {
	series, err := e.seriesIn(in, n)
	if err != nil {
		return err
	}
	transformed, err := stats.BoxCox(series, lambda)
	if err != nil {
		return err
	}
	return e.writeOut(out, transformed.Values)
}

// ARMAFitAuto runs the iterative ARMA(1,1) fit on the first n elements of in,
// writes the one-step forecasts to out, and returns the full fit result
// including the convergence status.
func (e *Engine) ARMAFitAuto(in, out arena.Handle, n int) (*arma.Result, error) {
	series, err := e.seriesIn(in, n)
	if err != nil {
		return nil, err
	}
	result, err := arma.FitAuto(series, e.fit)
	if err != nil {
		return nil, err
	}
	if err := e.writeOut(out, result.Forecast); err != nil {
		return nil, err
	}
	return result, nil
}

// ARMAFitFixed runs the fixed-parameter prediction pass on the first n
// elements of in and writes the forecasts to out.
func (e *Engine) ARMAFitFixed(in, out arena.Handle, n int) error {
	series, err := e.seriesIn(in, n)
	if err != nil {
		return err
	}
	result, err := arma.FitFixed(series, e.fit)
	if err != nil {
		return err
	}
	return e.writeOut(out, result.Forecast)
}

// ARMAFitFixedBytes is the historical form of ARMAFitFixed: the final
// argument is a byte length, divided by the element size to recover the
// element count. Whether callers were meant to pass bytes here was never
// settled upstream, so both forms are kept.
func (e *Engine) ARMAFitFixedBytes(in, out arena.Handle, byteLen int) error {
	return e.ARMAFitFixed(in, out, byteLen/elemSize)
}

// Call invokes an entry point by symbol name, mirroring how a host runtime
// dispatches into a loaded module. The symbol set matches the historical
// export table:
//
//	linear_detrend, arma_fit_auto, arma_fit_fixed, acf, pacf, boxcox
//
// For arma_fit_fixed the third argument is a byte length, as it always was;
// every other symbol takes an element count. Unknown symbols return
// ErrUnknownSymbol.
func (e *Engine) Call(symbol string, in, out arena.Handle, n int) error {
	switch symbol {
	case "linear_detrend":
		return e.LinearDetrend(in, out, n)
	case "arma_fit_auto":
		_, err := e.ARMAFitAuto(in, out, n)
		return err
	case "arma_fit_fixed":
		return e.ARMAFitFixedBytes(in, out, n)
	case "acf":
		return e.ACF(in, out, n)
	case "pacf":
		_, err := e.PACF(in, out, n)
		return err
	case "boxcox":
		return e.BoxCox(in, out, n)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
}

// Symbols returns the entry point names accepted by Call.
func (e *Engine) Symbols() []string {
	return []string{"linear_detrend", "arma_fit_auto", "arma_fit_fixed", "acf", "pacf", "boxcox"}
}

func (e *Engine) seriesIn(h arena.Handle, n int) (*timeseries.Series, error) {
	if n <= 0 {
		return nil, ErrBadElementCount
	}
	buf, err := e.arena.Float32(h)
	if err != nil {
		return nil, err
	}
	if n > len(buf) {
		return nil, fmt.Errorf("%w: input has %d elements, caller passed n=%d", ErrLengthMismatch, len(buf), n)
	}
	return timeseries.FromFloat32(buf[:n]), nil
}

func (e *Engine) writeOut(h arena.Handle, values []float64) error {
	buf, err := e.arena.Float32(h)
	if err != nil {
		return err
	}
	if len(values) > len(buf) {
		return fmt.Errorf("%w: output has %d elements, result needs %d", ErrLengthMismatch, len(buf), len(values))
	}
	for i, v := range values {
		buf[i] = float32(v)
	}
	return nil
}
