package stats

import (
	"fmt"
	"math"

	"github.com/hydrokit/goarma/timeseries"
)

// DefaultLambda is the historical Box-Cox exponent used when the caller does
// not choose one.
const DefaultLambda = 0.5

// BoxCox applies the Box-Cox power transform elementwise:
//
//	lambda == 0: result[i] = log(value[i])
//	otherwise:   result[i] = (value[i]^lambda - 1) / lambda
//
// The transform requires positive values when lambda is zero and non-negative
// values when lambda is fractional; such inputs return ErrInvalidInput rather
// than silently producing NaN or infinities.
func BoxCox(series *timeseries.Series, lambda float64) (*timeseries.Series, error) {
	n := series.Len()
	if n <= 0 {
		return nil, ErrEmptySeries
	}

	fractional := lambda != math.Trunc(lambda)

	result := make([]float64, n)
	for i, v := range series.Values {
		if lambda == 0 {
			if v <= 0 {
				return nil, fmt.Errorf("%w: log of non-positive value %g at index %d", ErrInvalidInput, v, i)
			}
			result[i] = math.Log(v)
			continue
		}
		if fractional && v < 0 {
			return nil, fmt.Errorf("%w: fractional power of negative value %g at index %d", ErrInvalidInput, v, i)
		}
		result[i] = (math.Pow(v, lambda) - 1) / lambda
	}

	return &timeseries.Series{
		Values: result,
		Name:   series.Name + "_boxcox",
	}, nil
}
