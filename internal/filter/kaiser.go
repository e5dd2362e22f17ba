// Package filter designs and runs the FIR channel filter that band-limits
// IQ samples ahead of resampling and demodulation.
package filter

import (
	"fmt"
	"math"

	"github.com/tphakala/go-fm-demod/internal/mathutil"
)

// KaiserWindow generates a Kaiser window of the specified length and β parameter.
//
// The window is symmetric: w[i] = w[length-1-i], with w = 1 at the centre.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = 1.0
		return window
	}

	// w[n] = I₀(β * sqrt(1 - ((n - α)/α)²)) / I₀(β), α = (N-1)/2
	alpha := float64(length-1) / windowNormalizationFactor
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		x := (float64(n) - alpha) / alpha
		window[n] = mathutil.BesselI0(beta*math.Sqrt(max(0, 1.0-x*x))) / i0Beta
	}

	return window
}

// KaiserParams holds the parameters of a Kaiser windowed-sinc design.
type KaiserParams struct {
	// NumTaps is the filter length.
	NumTaps int

	// Cutoff is the cutoff frequency as a fraction of the sample rate, in (0, 0.5).
	Cutoff float64

	// Attenuation is the desired stopband attenuation in dB.
	Attenuation float64

	// Delay is a fractional sample offset applied to the sinc centre, in [-0.5, 0.5].
	Delay float64
}

// Validate checks if filter parameters are valid.
func (p *KaiserParams) Validate() error {
	if p.NumTaps < minFilterTaps {
		return fmt.Errorf("filter too short: %d taps (minimum %d)", p.NumTaps, minFilterTaps)
	}

	if p.NumTaps > maxFilterTaps {
		return fmt.Errorf("filter too long: %d taps (maximum %d)", p.NumTaps, maxFilterTaps)
	}

	if p.Cutoff <= 0 || p.Cutoff >= maxCutoff {
		return fmt.Errorf("invalid cutoff frequency: %f (must be in (0, 0.5))", p.Cutoff)
	}

	if p.Attenuation < 0 {
		return fmt.Errorf("invalid attenuation: %f dB (must be positive)", p.Attenuation)
	}

	if p.Delay < -0.5 || p.Delay > 0.5 {
		return fmt.Errorf("invalid delay: %f (must be in [-0.5, 0.5])", p.Delay)
	}

	return nil
}

// DesignKaiser returns windowed-sinc lowpass taps
//
//	h[n] = sinc(2·fc·t) · w[n],  t = n - (N-1)/2 + delay
//
// The sinc peaks at 1, so the passband gain is roughly 1/(2·fc). The taps are
// left unnormalised; callers apply a gain of 2·fc to get unity at DC.
func DesignKaiser(params KaiserParams) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	beta := mathutil.KaiserBeta(params.Attenuation)
	window := KaiserWindow(params.NumTaps, beta)
	center := float64(params.NumTaps-1) / windowNormalizationFactor

	taps := make([]float64, params.NumTaps)
	for n := range params.NumTaps {
		t := float64(n) - center + params.Delay
		taps[n] = sinc(windowNormalizationFactor*params.Cutoff*t) * window[n]
	}

	return taps, nil
}

// sinc is the normalised sinc, sin(πx)/(πx).
func sinc(x float64) float64 {
	if math.Abs(x) < sincZeroThreshold {
		return 1.0
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}
