package blackscholes

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// putMatrix expresses the formula over mat.VecDense vectors. The formula
// has no linear-algebra structure, so every vector product here is
// MulElemVec; an inner or outer product would be wrong, not just slow.
func putMatrix(prices []float64, params OptionParameters) ([]float64, error) {
	if err := checkInputs(prices, params); err != nil {
		return nil, err
	}
	t := newTerms(params)
	n := len(prices)

	spot := mat.NewVecDense(n, nil)
	md1 := mat.NewVecDense(n, nil)
	for i, s := range prices {
		spot.SetVec(i, s)
		md1.SetVec(i, math.Log(s*t.invStrike)+t.drift)
	}
	md1.ScaleVec(-t.invVolSqrtT, md1) // md1 = -d1

	ones := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		ones.SetVec(i, 1)
	}
	md2 := mat.NewVecDense(n, nil)
	md2.AddScaledVec(md1, t.volSqrtT, ones) // md2 = -d2

	if err := cdfInto(rawData(md1), rawData(md1)); err != nil {
		return nil, err
	}
	if err := cdfInto(rawData(md2), rawData(md2)); err != nil {
		return nil, err
	}

	// values = strikeDisc * N(-d2) - yieldDisc * (spot o N(-d1))
	carry := mat.NewVecDense(n, nil)
	carry.MulElemVec(spot, md1) // elementwise
	values := mat.NewVecDense(n, nil)
	values.ScaleVec(t.strikeDisc, md2)
	values.AddScaledVec(values, -t.yieldDisc, carry)
	return rawData(values), nil
}

// rawData exposes the contiguous backing slice of a dense vector.
func rawData(v *mat.VecDense) []float64 {
	return v.RawVector().Data
}
