// Package arma implements ARMA(1,1) parameter estimation and one-step forecasting.
package arma

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/hydrokit/goarma/timeseries"
)

var (
	// ErrTooShort indicates the series has fewer than two observations, so
	// no lagged regression is possible.
	ErrTooShort = errors.New("arma: series must have at least two observations")

	// ErrDegenerate indicates the lagged sum of squares is zero and the AR
	// coefficient cannot be estimated.
	ErrDegenerate = errors.New("arma: degenerate series, zero lagged sum of squares")
)

// Seed coefficients for the two estimation modes.
const (
	autoSeedPhi   = 0.3
	autoSeedTheta = -0.2

	fixedPhi   = 0.5
	fixedTheta = 0.2
)

// Parameters holds the estimated ARMA(1,1) parameters.
type Parameters struct {
	Phi   float64 // AR coefficient
	Theta float64 // MA coefficient
	Mu    float64 // Series mean
}

// Config holds estimation settings. The zero value is not usable; call
// DefaultConfig or pass nil to the fit functions to get defaults.
type Config struct {
	MaxIterations int                // Iteration budget for FitAuto (default: 1000)
	Tolerance     float64            // Convergence tolerance on the parameter step norm (default: 1e-6)
	Logger        *zap.SugaredLogger // Diagnostic logger (default: no-op)
}

// DefaultConfig returns the default estimation settings.
func DefaultConfig() *Config {
	return &Config{
		MaxIterations: 1000,
		Tolerance:     1e-6,
	}
}

func (c *Config) withDefaults() *Config {
	cfg := &Config{}
	if c != nil {
		*cfg = *c
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = 1000
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = 1e-6
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	return cfg
}

// Result holds the outcome of a fit.
type Result struct {
	Params     Parameters
	Forecast   []float64 // One-step-ahead predictions; index 0 is never written.
	Converged  bool      // Whether the parameter step norm dropped below tolerance.
	Iterations int       // Iterations actually performed.
}

// FitAuto estimates ARMA(1,1) parameters by iterative refinement and returns
// the parameters together with one-step-ahead forecasts.
//
// Starting from seeds phi=0.3, theta=-0.2 and mu fixed at the series mean,
// each iteration computes the one-step residuals
//
//	e[i] = x[i] - mu - phi*x[i-1] - theta*(x[i-1] - mu)
//
// and refines phi by the regression of the residuals on the lagged series and
// theta from the residual sum of squares. The phi refinement is applied as an
// increment: assigning the regression quotient directly makes the recursion a
// reflection that cycles with period 2 and never meets any tolerance.
//
// Iteration stops when the Euclidean norm of the parameter step falls below
// cfg.Tolerance or the iteration budget is exhausted; Result.Converged
// distinguishes the two.
func FitAuto(series *timeseries.Series, cfg *Config) (*Result, error) {
	n := series.Len()
	if n < 2 {
		return nil, ErrTooShort
	}
	c := cfg.withDefaults()

	data := series.Values
	mu := series.Mean()

	phi := autoSeedPhi
	theta := autoSeedTheta

	converged := false
	iterations := 0

	for iter := 0; iter < c.MaxIterations; iter++ {
		prevPhi := phi
		prevTheta := theta

		sumXY := 0.0
		sumXSq := 0.0
		sumErrSq := 0.0
		for i := 1; i < n; i++ {
			e := data[i] - mu - phi*data[i-1] - theta*(data[i-1]-mu)
			sumXY += data[i-1] * e
			sumXSq += data[i-1] * data[i-1]
			sumErrSq += e * e
		}

		if sumXSq == 0 {
			return nil, ErrDegenerate
		}

		phi = prevPhi + sumXY/sumXSq
		theta = (sumErrSq - phi*sumXY) / float64(n-1)

		iterations = iter + 1
		if math.Hypot(phi-prevPhi, theta-prevTheta) < c.Tolerance {
			converged = true
			break
		}
	}

	if converged {
		c.Logger.Debugw("arma fit converged",
			"iterations", iterations, "phi", phi, "theta", theta)
	} else {
		c.Logger.Warnw("arma fit exhausted iteration budget",
			"iterations", iterations, "phi", phi, "theta", theta)
	}

	params := Parameters{Phi: phi, Theta: theta, Mu: mu}
	return &Result{
		Params:     params,
		Forecast:   forecast(data, params),
		Converged:  converged,
		Iterations: iterations,
	}, nil
}

// FitFixed performs a single one-step-ahead prediction pass using fixed seed
// coefficients phi=0.5, theta=0.2, with mu computed from the data. There is
// no iterative refinement; Result.Converged is always true and
// Result.Iterations is zero.
func FitFixed(series *timeseries.Series, cfg *Config) (*Result, error) {
	n := series.Len()
	if n < 2 {
		return nil, ErrTooShort
	}
	c := cfg.withDefaults()

	params := Parameters{
		Phi:   fixedPhi,
		Theta: fixedTheta,
		Mu:    series.Mean(),
	}

	c.Logger.Debugw("arma fixed-parameter prediction",
		"phi", params.Phi, "theta", params.Theta, "mu", params.Mu)

	return &Result{
		Params:    params,
		Forecast:  forecast(series.Values, params),
		Converged: true,
	}, nil
}

// forecast produces one-step-ahead predictions for i = 1..n-1. Index 0 of the
// returned slice is left at zero: there is no prior observation to predict
// from, and the reference implementation never writes it.
func forecast(data []float64, p Parameters) []float64 {
	pred := make([]float64, len(data))
	for i := 1; i < len(data); i++ {
		e := data[i] - p.Mu - p.Phi*data[i-1] - p.Theta*(data[i-1]-p.Mu)
		pred[i] = p.Mu + p.Phi*data[i-1] + p.Theta*e
	}
	return pred
}
