// Package benchmark times pricing-kernel variants over one shared input
// and ranks them by mean wall-clock cost.
package benchmark

import (
	"fmt"
	"sort"
	"time"

	"github.com/charlerive/putbench/blackscholes"
	"gonum.org/v1/gonum/stat"
)

// Result is the timing outcome for one kernel variant. Elapsed holds
// one sample per timed replication, in seconds, in execution order.
// Relative is the variant's mean divided by the fastest variant's mean;
// the fastest healthy variant has Relative == 1. A variant that failed
// carries its error in Err and no samples.
type Result struct {
	Variant      string
	Replications int
	Elapsed      []float64
	Mean         float64
	Relative     float64
	Err          error
}

// Run invokes every variant replications times against the identical
// (prices, params) input, sequentially and single-threaded, and returns
// one Result per variant sorted ascending by mean elapsed time. Failed
// variants sort last; ties keep the order variants were passed in.
//
// One untimed warm-up invocation per variant is always performed and
// discarded. It absorbs one-time setup cost and doubles as the failure
// probe: a variant that cannot price the input is marked failed before
// any timing starts, and the run continues with the remaining variants.
//
// Run never mutates prices or params.
func Run(variants []blackscholes.Variant, prices []float64, params blackscholes.OptionParameters, replications int) ([]Result, error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("%w: no kernel variants to benchmark", blackscholes.ErrInvalidInput)
	}
	if replications < 1 {
		return nil, fmt.Errorf("%w: replications %d must be >= 1", blackscholes.ErrInvalidInput, replications)
	}

	results := make([]Result, 0, len(variants))
	for _, v := range variants {
		res := Result{Variant: v.Name, Replications: replications}

		// warm-up
		if _, err := v.Evaluate(prices, params); err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}

		res.Elapsed = make([]float64, 0, replications)
		for i := 0; i < replications; i++ {
			start := time.Now()
			_, err := v.Evaluate(prices, params)
			elapsed := time.Since(start)
			if err != nil {
				res.Err = err
				res.Elapsed = nil
				break
			}
			res.Elapsed = append(res.Elapsed, elapsed.Seconds())
		}
		if res.Err == nil {
			res.Mean = stat.Mean(res.Elapsed, nil)
		}
		results = append(results, res)
	}

	rank(results)
	return results, nil
}

func rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		if results[i].Err != nil {
			return false
		}
		return results[i].Mean < results[j].Mean
	})

	var fastest float64
	for i := range results {
		if results[i].Err == nil {
			fastest = results[i].Mean
			break
		}
	}
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if fastest > 0 {
			results[i].Relative = results[i].Mean / fastest
		} else {
			// below clock resolution; every healthy variant ties
			results[i].Relative = 1
		}
	}
}
