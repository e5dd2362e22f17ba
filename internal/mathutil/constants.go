package mathutil

// Bessel series evaluation
const (
	// Terms are added until they fall below this fraction of the running sum.
	besselSeriesEpsilon = 1e-16

	// Hard cap on series terms; |x| < 40 converges well before this.
	besselMaxTerms = 64

	halfDivisor = 2.0
)

// Stopband attenuation (dB) to Kaiser β, piecewise.
const (
	kaiserAttHigh   = 50.0 // linear segment above this
	kaiserAttMedium = 21.0 // β is 0 below this

	kaiserBetaHighCoeff1 = 0.1102
	kaiserBetaHighOffset = 8.7

	// 0.5842·d^0.4 + 0.07886·d, d = att - 21
	kaiserBetaMediumCoeff1 = 0.5842
	kaiserBetaMediumPower  = 0.4
	kaiserBetaMediumCoeff2 = 0.07886
)
