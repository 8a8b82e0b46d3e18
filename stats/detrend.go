// Package stats provides statistical analysis functions for time series.
package stats

import (
	"github.com/hydrokit/goarma/timeseries"
)

// Detrend removes a linear trend from the series by ordinary least squares
// regression of value against index, the index acting as the time axis.
// The result has the same length as the input: result[i] = value[i] - (slope*i + intercept).
//
// Returns ErrEmptySeries for an empty series and ErrDegenerate for a single
// observation, where the index variance is zero and the slope is undefined.
func Detrend(series *timeseries.Series) (*timeseries.Series, error) {
	n := series.Len()
	if n <= 0 {
		return nil, ErrEmptySeries
	}

	data := series.Values

	xMean := 0.0
	yMean := 0.0
	xyCov := 0.0
	for i := 0; i < n; i++ {
		xMean += float64(i)
		yMean += data[i]
		xyCov += float64(i) * data[i]
	}
	xMean /= float64(n)
	yMean /= float64(n)
	xyCov /= float64(n)

	xVar := 0.0
	for i := 0; i < n; i++ {
		diff := float64(i) - xMean
		xVar += diff * diff
	}
	xVar /= float64(n)

	if xVar == 0 {
		return nil, ErrDegenerate
	}

	slope := (xyCov - xMean*yMean) / xVar
	intercept := yMean - slope*xMean

	result := make([]float64, n)
	for i := 0; i < n; i++ {
		result[i] = data[i] - (slope*float64(i) + intercept)
	}

	return &timeseries.Series{
		Values: result,
		Name:   series.Name + "_detrended",
	}, nil
}
