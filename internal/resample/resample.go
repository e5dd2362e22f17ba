// Package resample changes the sample rate of a complex IQ stream.
//
// The in-phase and quadrature rails are resampled by two identically
// configured streaming resamplers from github.com/tphakala/go-audio-resampling.
// Both see the same number of input samples on every call, so their outputs
// stay aligned.
package resample

import (
	"errors"
	"fmt"
	"math"

	resampling "github.com/tphakala/go-audio-resampling"
)

// ErrInvalidRates is returned for non-positive or non-finite sample rates.
var ErrInvalidRates = errors.New("invalid resampler rates")

// Resampler converts complex samples from one rate to another.
type Resampler struct {
	inputRate  float64
	outputRate float64
	ratio      float64

	// rails is nil when the ratio is 1 and samples pass straight through.
	rails []resampling.Resampler

	re, im []float64
	out    []complex64
}

// New creates a complex resampler from inputRate to outputRate whose
// anti-aliasing filter reaches at least the given stopband attenuation.
func New(inputRate, outputRate, attenuation float64) (*Resampler, error) {
	if !(inputRate > 0) || !(outputRate > 0) || math.IsInf(inputRate, 0) || math.IsInf(outputRate, 0) {
		return nil, fmt.Errorf("%w: input=%v output=%v", ErrInvalidRates, inputRate, outputRate)
	}

	r := &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		ratio:      outputRate / inputRate,
	}

	if math.Abs(r.ratio-1) < unityTolerance {
		return r, nil
	}

	preset := PresetFor(attenuation)
	r.rails = make([]resampling.Resampler, rails)
	for ch := range rails {
		rs, err := resampling.New(&resampling.Config{
			InputRate:  inputRate,
			OutputRate: outputRate,
			Channels:   1,
			Quality:    resampling.QualitySpec{Preset: preset},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create resampler for rail %d: %w", ch, err)
		}
		r.rails[ch] = rs
	}

	return r, nil
}

// PresetFor returns the cheapest quality preset whose stopband attenuation
// is at least attenuation dB.
func PresetFor(attenuation float64) resampling.QualityPreset {
	switch {
	case attenuation <= attenuationQuick:
		return resampling.QualityQuick
	case attenuation <= attenuationLow:
		return resampling.QualityLow
	case attenuation <= attenuationHigh:
		return resampling.QualityHigh
	default:
		return resampling.QualityVeryHigh
	}
}

// Ratio returns the resampling ratio (output rate / input rate).
func (r *Resampler) Ratio() float64 {
	return r.ratio
}

// Passthrough reports whether samples are returned unchanged.
func (r *Resampler) Passthrough() bool {
	return r.rails == nil
}

// Latency returns the filter delay reported by the resampler in samples,
// 0 when passing through.
func (r *Resampler) Latency() int {
	if r.rails == nil {
		return 0
	}
	return r.rails[railI].GetLatency()
}

// Resample consumes one block and returns whatever output the resamplers
// produced for it. The output length varies from call to call; the returned
// slice is reused and only valid until the next call.
func (r *Resampler) Resample(in []complex64) ([]complex64, error) {
	if r.rails == nil {
		return in, nil
	}
	if len(in) == 0 {
		return r.out[:0], nil
	}

	r.re = growFloat64(r.re, len(in))
	r.im = growFloat64(r.im, len(in))
	for i, s := range in {
		r.re[i] = float64(real(s))
		r.im[i] = float64(imag(s))
	}

	outRe, err := r.rails[railI].Process(r.re)
	if err != nil {
		return nil, fmt.Errorf("in-phase rail: %w", err)
	}
	outIm, err := r.rails[railQ].Process(r.im)
	if err != nil {
		return nil, fmt.Errorf("quadrature rail: %w", err)
	}

	n := min(len(outRe), len(outIm))
	if cap(r.out) < n {
		r.out = make([]complex64, n)
	}
	r.out = r.out[:n]
	for i := range n {
		r.out[i] = complex(float32(outRe[i]), float32(outIm[i]))
	}

	return r.out, nil
}

// Reset clears the resampler state on both rails.
func (r *Resampler) Reset() {
	for _, rs := range r.rails {
		rs.Reset()
	}
}

func growFloat64(s []float64, n int) []float64 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]float64, n)
}
