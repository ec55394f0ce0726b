package blackscholes

import "math"

// putScalar is the fused reference kernel: one pass, no temporary
// vectors, two CDF calls per element.
func putScalar(prices []float64, params OptionParameters) ([]float64, error) {
	if err := checkInputs(prices, params); err != nil {
		return nil, err
	}
	t := newTerms(params)
	values := make([]float64, len(prices))
	for i, s := range prices {
		d1 := (math.Log(s/params.Strike) + t.drift) / t.volSqrtT
		d2 := d1 - t.volSqrtT
		n1 := normCDF(-d1)
		if err := checkProb(-d1, n1); err != nil {
			return nil, err
		}
		n2 := normCDF(-d2)
		if err := checkProb(-d2, n2); err != nil {
			return nil, err
		}
		values[i] = t.strikeDisc*n2 - s*t.yieldDisc*n1
	}
	return values, nil
}
