package blackscholes

import (
	"errors"
	"math"
	"testing"
)

var refParams = OptionParameters{
	Strike:        60,
	RiskFreeRate:  0.01,
	DividendYield: 0.02,
	TimeToExpiry:  1,
	Volatility:    0.05,
}

// Reference values for spots 55..60 under refParams, from an
// independent high-precision evaluation of the put formula.
var refSpots = []float64{55, 56, 57, 58, 59, 60}
var refValues = []float64{
	5.520212424023022,
	4.581423509388266,
	3.684848269571653,
	2.855165436891795,
	2.118832500342244,
	1.497929745212367,
}

func closeTo(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol*math.Max(1, math.Abs(want))
}

func TestReferenceValues(t *testing.T) {
	for _, v := range Variants() {
		values, err := v.Evaluate(refSpots, refParams)
		if err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
		if len(values) != len(refSpots) {
			t.Fatalf("%s: got %d values for %d spots", v.Name, len(values), len(refSpots))
		}
		for i, want := range refValues {
			if !closeTo(values[i], want, 1e-9) {
				t.Errorf("%s: spot %v: got %v want %v", v.Name, refSpots[i], values[i], want)
			}
		}
	}
}

func TestVariantsEquivalent(t *testing.T) {
	prices := make([]float64, 1000)
	for i := range prices {
		// spots from deep in-the-money to deep out-of-the-money
		prices[i] = 5 + 0.2*float64(i)
	}
	params := OptionParameters{Strike: 100, RiskFreeRate: 0.03, DividendYield: 0.01, TimeToExpiry: 0.75, Volatility: 0.4}

	vs := Variants()
	base, err := vs[0].Evaluate(prices, params)
	if err != nil {
		t.Fatalf("%s: %v", vs[0].Name, err)
	}
	for _, v := range vs[1:] {
		got, err := v.Evaluate(prices, params)
		if err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
		for i := range base {
			if !closeTo(got[i], base[i], 1e-9) {
				t.Fatalf("%s vs %s at spot %v: %v != %v", v.Name, vs[0].Name, prices[i], got[i], base[i])
			}
		}
	}
}

func TestPermutingInputPermutesOutput(t *testing.T) {
	n := len(refSpots)
	reversed := make([]float64, n)
	for i, s := range refSpots {
		reversed[n-1-i] = s
	}
	for _, v := range Variants() {
		forward, err := v.Evaluate(refSpots, refParams)
		if err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
		backward, err := v.Evaluate(reversed, refParams)
		if err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
		for i := range forward {
			if forward[i] != backward[n-1-i] {
				t.Errorf("%s: element %d leaked across the permutation: %v != %v", v.Name, i, forward[i], backward[n-1-i])
			}
		}
	}
}

func TestPutValueDecreasesInSpot(t *testing.T) {
	for _, v := range Variants() {
		values, err := v.Evaluate(refSpots, refParams)
		if err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
		for i := 1; i < len(values); i++ {
			if values[i] >= values[i-1] {
				t.Errorf("%s: value %v at spot %v not below %v at spot %v",
					v.Name, values[i], refSpots[i], values[i-1], refSpots[i-1])
			}
		}
	}
}

func TestValueBounds(t *testing.T) {
	prices := []float64{1e-6, 0.5, 30, 60, 90, 1e6}
	upper := refParams.Strike * math.Exp(-refParams.RiskFreeRate*refParams.TimeToExpiry)
	const eps = 1e-9
	for _, v := range Variants() {
		values, err := v.Evaluate(prices, refParams)
		if err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
		for i, value := range values {
			if math.IsNaN(value) || value < -eps || value > upper+eps {
				t.Errorf("%s: spot %v: value %v outside [0, %v]", v.Name, prices[i], value, upper)
			}
		}
	}
}

func TestDomainRejection(t *testing.T) {
	bad := []struct {
		name   string
		prices []float64
		params OptionParameters
	}{
		{"zero volatility", refSpots, OptionParameters{Strike: 60, TimeToExpiry: 1}},
		{"zero expiry", refSpots, OptionParameters{Strike: 60, Volatility: 0.05}},
		{"negative volatility", refSpots, OptionParameters{Strike: 60, TimeToExpiry: 1, Volatility: -0.1}},
		{"zero strike", refSpots, OptionParameters{TimeToExpiry: 1, Volatility: 0.05}},
		{"zero spot", []float64{55, 0, 57}, refParams},
		{"negative spot", []float64{-55}, refParams},
		{"nan spot", []float64{math.NaN()}, refParams},
		{"empty vector", nil, refParams},
	}
	for _, tc := range bad {
		for _, v := range Variants() {
			if _, err := v.Evaluate(tc.prices, tc.params); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("%s: %s: got %v, want ErrInvalidInput", v.Name, tc.name, err)
			}
		}
	}
}

func TestKernelDoesNotMutateInputs(t *testing.T) {
	prices := append([]float64(nil), refSpots...)
	params := refParams
	for _, v := range Variants() {
		if _, err := v.Evaluate(prices, params); err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
		for i := range prices {
			if prices[i] != refSpots[i] {
				t.Fatalf("%s: mutated prices[%d]: %v", v.Name, i, prices[i])
			}
		}
		if params != refParams {
			t.Fatalf("%s: mutated params: %+v", v.Name, params)
		}
	}
}

func TestCheckProb(t *testing.T) {
	for _, p := range []float64{-0.1, 1.5, math.NaN()} {
		if err := checkProb(0, p); !errors.Is(err, ErrCDF) {
			t.Errorf("checkProb(0, %v): got %v, want ErrCDF", p, err)
		}
	}
	for _, p := range []float64{0, 0.5, 1} {
		if err := checkProb(0, p); err != nil {
			t.Errorf("checkProb(0, %v): unexpected error %v", p, err)
		}
	}
}

func TestBrokenCDFSurfacesAsErrCDF(t *testing.T) {
	saved := normCDF
	defer func() { normCDF = saved }()
	normCDF = func(x float64) float64 { return 2 }

	for _, v := range Variants() {
		if _, err := v.Evaluate(refSpots, refParams); !errors.Is(err, ErrCDF) {
			t.Errorf("%s: got %v, want ErrCDF", v.Name, err)
		}
	}

	dst := make([]float64, 1)
	if err := cdfInto(dst, []float64{0}); !errors.Is(err, ErrCDF) {
		t.Errorf("cdfInto: got %v, want ErrCDF", err)
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("registering a duplicate variant did not panic")
		}
	}()
	register("scalar", putScalar)
}

func TestRegistry(t *testing.T) {
	names := []string{"scalar", "floats", "matrix"}
	vs := Variants()
	if len(vs) != len(names) {
		t.Fatalf("got %d variants, want %d", len(vs), len(names))
	}
	for i, want := range names {
		if vs[i].Name != want {
			t.Errorf("variant %d is %q, want %q", i, vs[i].Name, want)
		}
		if _, ok := Lookup(want); !ok {
			t.Errorf("Lookup(%q) missed", want)
		}
	}
	if _, ok := Lookup("gpu"); ok {
		t.Error("Lookup of unregistered variant succeeded")
	}
}

func benchPrices(n int) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = 30 + 60*float64(i)/float64(n-1)
	}
	return prices
}

func BenchmarkScalar(b *testing.B) {
	prices := benchPrices(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = putScalar(prices, refParams)
	}
}

func BenchmarkFloats(b *testing.B) {
	prices := benchPrices(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = putFloats(prices, refParams)
	}
}

func BenchmarkMatrix(b *testing.B) {
	prices := benchPrices(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = putMatrix(prices, refParams)
	}
}
