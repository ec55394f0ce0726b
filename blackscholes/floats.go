package blackscholes

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// putFloats stages the formula as bulk passes over temporary buffers
// using gonum/floats. gonum has no vectorized ln, so the log stage is a
// plain loop feeding the bulk stages.
func putFloats(prices []float64, params OptionParameters) ([]float64, error) {
	if err := checkInputs(prices, params); err != nil {
		return nil, err
	}
	t := newTerms(params)
	n := len(prices)

	// md1 = -d1, md2 = -d2
	md1 := make([]float64, n)
	for i, s := range prices {
		md1[i] = math.Log(s * t.invStrike)
	}
	floats.AddConst(t.drift, md1)
	floats.Scale(-t.invVolSqrtT, md1)

	md2 := make([]float64, n)
	copy(md2, md1)
	floats.AddConst(t.volSqrtT, md2)

	if err := cdfInto(md1, md1); err != nil {
		return nil, err
	}
	if err := cdfInto(md2, md2); err != nil {
		return nil, err
	}

	// values = strikeDisc * N(-d2) - yieldDisc * (prices .* N(-d1))
	values := make([]float64, n)
	copy(values, md2)
	floats.Scale(t.strikeDisc, values)
	floats.Mul(md1, prices)
	floats.AddScaled(values, -t.yieldDisc, md1)
	return values, nil
}
