package stats

import (
	"math"

	"github.com/hydrokit/goarma/timeseries"
)

// PACFResult holds the partial autocorrelation coefficients together with the
// per-order AIC scores used for lag selection.
//
// Coefficients has one entry per lag 0..n-1, but only entries up to
// SelectedLag are recomputed by the final pass; entries beyond SelectedLag
// retain the values from the exploratory pass. This matches the reference
// implementation, which leaves the tail of the output buffer untouched after
// order selection.
type PACFResult struct {
	Coefficients []float64
	AIC          []float64
	SelectedLag  int
}

// PACF calculates the partial autocorrelation function with automatic order
// selection. For each candidate order k it estimates a coefficient by
// regressing the partial residual against the lagged series, corrects it
// against all lower-order coefficients, and scores the order-(k+1) model with
//
//	AIC(k) = log(rss/n) + 2*(k+1)/n
//
// The order minimizing AIC is selected, and the coefficient sequence is then
// recomputed for orders 0..SelectedLag.
//
// Returns ErrEmptySeries for an empty series.
func PACF(series *timeseries.Series) (*PACFResult, error) {
	n := series.Len()
	if n <= 0 {
		return nil, ErrEmptySeries
	}

	r := make([]float64, n)
	copy(r, series.Values)

	phi := make([]float64, n)
	coeffs := make([]float64, n)
	aic := make([]float64, n)

	minAIC := math.Inf(1)
	selected := 0

	for k := 0; k < n; k++ {
		pacfOrder(r, phi, coeffs, k)

		// Residual sum of squares for a model of order k+1.
		m := k + 1
		rss := 0.0
		for i := m; i < n; i++ {
			y := r[i]
			for j := 1; j <= m; j++ {
				y -= phi[j-1] * r[i-j]
			}
			rss += y * y
		}

		aic[k] = math.Log(rss/float64(n)) + 2*float64(m)/float64(n)

		if aic[k] < minAIC {
			minAIC = aic[k]
			selected = k
		}
	}

	// Final pass: re-derive coefficients up to the selected order only.
	// Entries beyond the selected order keep their exploratory values.
	for k := 0; k <= selected; k++ {
		pacfOrder(r, phi, coeffs, k)
	}

	return &PACFResult{
		Coefficients: coeffs,
		AIC:          aic,
		SelectedLag:  selected,
	}, nil
}

// pacfOrder estimates the order-k coefficient from the partial residuals and
// writes both the raw regression coefficient (phi[k]) and the corrected
// partial autocorrelation (coeffs[k]).
func pacfOrder(r, phi, coeffs []float64, k int) {
	n := len(r)

	num := 0.0
	den := 0.0
	for i := k + 1; i < n; i++ {
		y := r[i]
		for j := 0; j < k; j++ {
			y -= phi[j] * r[i-j-1]
		}
		num += r[i-k-1] * y
		den += y * y
	}

	if den == 0 {
		phi[k] = 0
	} else {
		phi[k] = num / den
	}

	coeffs[k] = phi[k]
	for j := 0; j < k; j++ {
		coeffs[k] -= phi[j] * coeffs[k-j-1]
	}
}
