package filter

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FilterResponse holds the frequency response of a filter.
type FilterResponse struct {
	// Frequencies at which response was calculated (normalized, 0 to 0.5)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// ComputeFrequencyResponse evaluates the response of real FIR taps, scaled by
// gain, at numPoints+1 evenly spaced frequencies from DC to Nyquist.
//
// The taps are zero padded to 2·numPoints and transformed with a real FFT.
func ComputeFrequencyResponse(taps []float32, gain float64, numPoints int) FilterResponse {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	size := responseOversample * numPoints
	for size < len(taps) {
		size *= responseOversample
	}

	seq := make([]float64, size)
	for i, h := range taps {
		seq[i] = float64(h) * gain
	}

	fft := fourier.NewFFT(len(seq))
	coeffs := fft.Coefficients(nil, seq)

	response := FilterResponse{
		Frequencies: make([]float64, len(coeffs)),
		Magnitude:   make([]float64, len(coeffs)),
		Phase:       make([]float64, len(coeffs)),
	}
	for k, c := range coeffs {
		response.Frequencies[k] = fft.Freq(k)
		response.Magnitude[k] = cmplx.Abs(c)
		response.Phase[k] = cmplx.Phase(c)
	}

	return response
}

// At returns the magnitude at the bin closest to freq (fraction of the sample rate).
func (r FilterResponse) At(freq float64) float64 {
	if len(r.Frequencies) < 2 {
		return 0
	}
	step := r.Frequencies[1] - r.Frequencies[0]
	k := int(math.Round(freq / step))
	k = max(0, min(k, len(r.Magnitude)-1))
	return r.Magnitude[k]
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
