// Package mathutil provides the special functions used by the channel filter design.
package mathutil

import (
	"math"
)

// BesselI0 computes the modified Bessel function of the first kind, order zero: I₀(x).
//
// The power series I₀(x) = Σ ((x/2)^k / k!)² is summed directly. Kaiser β stays
// well below 20 for any attenuation this package designs for, where the series
// converges in a few dozen terms with full float64 precision.
func BesselI0(x float64) float64 {
	half := math.Abs(x) / halfDivisor

	sum := 1.0
	term := 1.0
	for k := 1; k <= besselMaxTerms; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term
		if term < sum*besselSeriesEpsilon {
			break
		}
	}

	return sum
}

// KaiserBeta returns the window shape β that reaches the given stopband
// attenuation in dB. Anything under 21 dB needs no taper and yields 0;
// the channel filter's 70 dB lands on the linear 0.1102·(att-8.7) segment.
func KaiserBeta(attenuation float64) float64 {
	if attenuation > kaiserAttHigh {
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	} else if attenuation >= kaiserAttMedium {
		delta := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*delta
	}
	return 0.0
}
