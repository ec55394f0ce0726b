// Package blackscholes prices European put options with the closed-form
// Black-Scholes formula over a vector of spot prices.
//
// Several kernel variants share one contract and one formula:
//
//	d1 = (ln(S/K) + (r - q + sigma^2/2) T) / (sigma sqrt(T))
//	d2 = d1 - sigma sqrt(T)
//	P  = K exp(-r T) N(-d2) - S exp(-q T) N(-d1)
//
// applied independently per element. The variants differ only in
// execution strategy (fused scalar loop, staged gonum/floats passes,
// gonum/mat elementwise vectors) and must agree numerically.
package blackscholes

import (
	"fmt"
	"math"
)

// EvaluateFunc maps a spot-price vector and scalar contract terms to a
// newly allocated put-value vector. Implementations are pure: they never
// mutate prices or params, and output index i prices input index i.
type EvaluateFunc func(prices []float64, params OptionParameters) ([]float64, error)

// Variant is a named, stateless pricing kernel.
type Variant struct {
	Name     string
	Evaluate EvaluateFunc
}

var (
	variants     []Variant
	variantIndex = map[string]int{}
)

// register panics on a duplicate name: variants are wired at init time
// and a collision is a programming error.
func register(name string, fn EvaluateFunc) {
	if _, dup := variantIndex[name]; dup {
		panic("blackscholes: duplicate kernel variant " + name)
	}
	variantIndex[name] = len(variants)
	variants = append(variants, Variant{Name: name, Evaluate: fn})
}

func init() {
	register("scalar", putScalar)
	register("floats", putFloats)
	register("matrix", putMatrix)
}

// Variants returns every registered kernel in registration order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, bool) {
	i, ok := variantIndex[name]
	if !ok {
		return Variant{}, false
	}
	return variants[i], true
}

// checkInputs applies the shared domain policy: parameters must satisfy
// Validate, and every spot must be a strictly positive number. ln(S/K)
// is undefined at S <= 0, and all variants fail fast there instead of
// letting NaN flow through.
func checkInputs(prices []float64, params OptionParameters) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if len(prices) == 0 {
		return fmt.Errorf("%w: price vector must not be empty", ErrInvalidInput)
	}
	for i, s := range prices {
		if !(s > 0) || math.IsInf(s, 1) {
			return fmt.Errorf("%w: spot price %v at index %d must be a positive number", ErrInvalidInput, s, i)
		}
	}
	return nil
}

// terms are the per-call scalars every variant hoists out of its
// elementwise pass.
type terms struct {
	volSqrtT    float64 // sigma * sqrt(T)
	drift       float64 // (r - q + sigma^2/2) * T
	strikeDisc  float64 // K * exp(-r T)
	yieldDisc   float64 // exp(-q T)
	invStrike   float64 // 1 / K
	invVolSqrtT float64 // 1 / (sigma * sqrt(T))
}

func newTerms(p OptionParameters) terms {
	sqrtT := math.Sqrt(p.TimeToExpiry)
	volSqrtT := p.Volatility * sqrtT
	return terms{
		volSqrtT:    volSqrtT,
		drift:       (p.RiskFreeRate - p.DividendYield + 0.5*p.Volatility*p.Volatility) * p.TimeToExpiry,
		strikeDisc:  p.Strike * math.Exp(-p.RiskFreeRate*p.TimeToExpiry),
		yieldDisc:   math.Exp(-p.DividendYield * p.TimeToExpiry),
		invStrike:   1 / p.Strike,
		invVolSqrtT: 1 / volSqrtT,
	}
}
