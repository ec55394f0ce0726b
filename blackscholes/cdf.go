package blackscholes

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrCDF reports a normal-CDF primitive that returned a value outside
// [0, 1]. The formula cannot recover from a broken distribution, so the
// evaluation fails immediately.
var ErrCDF = errors.New("blackscholes: normal cdf out of range")

// normCDF is the standard normal cumulative distribution function.
// gonum's implementation is erfc-based and saturates to exactly 0 or 1
// in the far tails instead of overflowing. A variable so tests can
// stand in a broken primitive.
var normCDF = distuv.UnitNormal.CDF

func checkProb(x, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: cdf(%v) = %v", ErrCDF, x, p)
	}
	return nil
}

// cdfInto fills dst[i] = N(x[i]). dst may alias x. Every output is
// range-checked so a broken primitive surfaces as ErrCDF rather than
// propagating garbage through the value vector.
func cdfInto(dst, x []float64) error {
	for i, v := range x {
		p := normCDF(v)
		if err := checkProb(v, p); err != nil {
			return err
		}
		dst[i] = p
	}
	return nil
}
