package blackscholes

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput reports parameters or spot prices outside the formula domain.
var ErrInvalidInput = errors.New("blackscholes: invalid input")

// OptionParameters are the scalar contract terms of a European put.
// The zero value is invalid; construct a literal and let the kernel
// validate it. Rates and yield are annualized continuous rates,
// TimeToExpiry is in years.
type OptionParameters struct {
	Strike        float64 `json:"strike_price"`
	RiskFreeRate  float64 `json:"risk_free_rate"`
	DividendYield float64 `json:"dividend_yield"`
	TimeToExpiry  float64 `json:"time_to_expiry"`
	Volatility    float64 `json:"volatility"`
}

// Validate rejects parameters the closed-form formula cannot price.
// Volatility and TimeToExpiry must be strictly positive: both divide
// the d1 numerator.
func (p OptionParameters) Validate() error {
	switch {
	case !(p.Strike > 0):
		return fmt.Errorf("%w: strike %v must be > 0", ErrInvalidInput, p.Strike)
	case !(p.TimeToExpiry > 0):
		return fmt.Errorf("%w: time to expiry %v must be > 0", ErrInvalidInput, p.TimeToExpiry)
	case !(p.Volatility > 0):
		return fmt.Errorf("%w: volatility %v must be > 0", ErrInvalidInput, p.Volatility)
	case math.IsNaN(p.RiskFreeRate) || math.IsNaN(p.DividendYield):
		return fmt.Errorf("%w: rate %v / yield %v must be numbers", ErrInvalidInput, p.RiskFreeRate, p.DividendYield)
	}
	return nil
}
