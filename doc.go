// Package goarma provides a compact time-series statistics core designed to be
// driven by a host runtime across an explicit buffer boundary.
//
// GoARMA implements linear detrending, iterative ARMA(1,1) parameter
// estimation, autocorrelation (ACF), partial autocorrelation with AIC-based
// order selection (PACF), and the Box-Cox power transform. The numeric
// routines operate on plain float64 slices; the compute package wraps them in
// a float32 buffer ABI backed by a generation-checked arena, so a host can
// allocate memory, write a series into it, invoke entry points by name, and
// read results back without sharing Go objects.
//
// # Quick Start
//
// Use the numeric packages directly:
//
//	series := timeseries.New(values)
//	detrended, _ := stats.Detrend(series)
//	result, _ := arma.FitAuto(detrended, nil)
//	fmt.Printf("phi=%.4f theta=%.4f converged=%v\n",
//	    result.Params.Phi, result.Params.Theta, result.Converged)
//
// Or drive everything through the buffer boundary:
//
//	eng := compute.New(nil)
//	in, _ := eng.Alloc(len(values))
//	out, _ := eng.Alloc(len(values))
//	eng.Write(in, values32)
//	eng.Call("acf", in, out, len(values))
//	acf, _ := eng.Read(out)
//	eng.Release(in)
//	eng.Release(out)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: position-indexed series type and CSV loading
//   - stats: detrending, ACF, PACF with order selection, Box-Cox
//   - arma: ARMA(1,1) estimation with explicit convergence reporting
//   - arena: generation-checked buffer arena for the host boundary
//   - compute: named entry points over float32 buffers
//
// # References
//
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package goarma
