// Package testutil provides reusable test helper functions for the demodulator tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	SampleTolerance  = 1e-6
	DBTolerance      = 0.01
)

// halfDivisor is used for finding center indices in symmetric arrays.
const halfDivisor = 2

// Float is the set of sample types the helpers accept.
type Float interface {
	float32 | float64
}

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric[F Float](t *testing.T, s []F, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := range n / halfDivisor {
		j := n - 1 - i
		if !assert.InDelta(t, float64(s[i]), float64(s[j]), tolerance,
			"slice not symmetric at i=%d: s[%d]=%f != s[%d]=%f", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf[F Float](t *testing.T, s []F) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(float64(v)) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(float64(v), 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange[F Float](t *testing.T, s []F, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if float64(v) < minVal || float64(v) > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertAllNear verifies that every element is within tolerance of want.
func AssertAllNear[F Float](t *testing.T, s []F, want, tolerance float64) bool {
	t.Helper()
	for i, v := range s {
		if math.Abs(float64(v)-want) > tolerance {
			return assert.Fail(t, "value not near expected",
				"s[%d]=%f, want %f ± %g", i, v, want, tolerance)
		}
	}
	return true
}

// AssertComplexNear verifies both rails of a complex sample against want.
func AssertComplexNear(t *testing.T, want, got complex64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	okRe := assert.InDelta(t, float64(real(want)), float64(real(got)), tolerance, msgAndArgs...)
	okIm := assert.InDelta(t, float64(imag(want)), float64(imag(got)), tolerance, msgAndArgs...)
	return okRe && okIm
}

// AssertDCGain verifies that the sum of coefficients equals the expected DC gain.
func AssertDCGain[F Float](t *testing.T, coeffs []F, expectedGain, tolerance float64) bool {
	t.Helper()
	var sum float64
	for _, c := range coeffs {
		sum += float64(c)
	}
	return assert.InDelta(t, expectedGain, sum, tolerance,
		"DC gain = %f, want %f", sum, expectedGain)
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// Tone returns n complex samples of a unit-amplitude tone at freq cycles per sample.
func Tone(n int, freq float64) []complex64 {
	out := make([]complex64, n)
	for i := range out {
		phase := 2 * math.Pi * freq * float64(i)
		out[i] = complex(float32(math.Cos(phase)), float32(math.Sin(phase)))
	}
	return out
}
