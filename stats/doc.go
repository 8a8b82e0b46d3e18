// Package stats provides statistical analysis functions for time series.
//
// This package includes linear detrending, the sample autocorrelation
// function, partial autocorrelation with automatic order selection, and the
// Box-Cox power transform.
//
// # Detrending
//
// Remove a linear trend prior to further analysis:
//
//	detrended, err := stats.Detrend(series)
//
// # Autocorrelation Functions
//
// Analyze autocorrelation patterns:
//
//	// Full-lag autocorrelation function; note the halved lag-0 entry
//	acf, err := stats.ACF(series)
//
//	// Partial autocorrelation with AIC-based order selection
//	result, err := stats.PACF(series)
//	fmt.Printf("selected lag: %d\n", result.SelectedLag)
//
// # Power Transform
//
// Stabilize variance with the Box-Cox transform:
//
//	transformed, err := stats.BoxCox(series, stats.DefaultLambda)
//
// # Error Handling
//
// Degenerate inputs (empty series, zero variance, values outside a transform
// domain) are reported as errors rather than propagated as NaN:
//
//	if _, err := stats.ACF(constant); errors.Is(err, stats.ErrDegenerate) {
//	    // series has zero variance
//	}
package stats
