// Package freqdem implements a quadrature FM discriminator.
package freqdem

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

const monoChannels = 1

// Demodulator recovers the instantaneous frequency of a complex baseband
// signal. Each output sample is the phase step between consecutive inputs,
// scaled so that a frequency offset equal to the deviation reads as ±1:
//
//	y[n] = arg(x[n] · conj(x[n-1])) / (2π · k)
//
// where k is the modulation factor (deviation / sample rate).
type Demodulator struct {
	factor float64
	ref    float64
	prev   complex64
	out    *audio.Float32Buffer
}

// New creates a demodulator for modulation factor k and the given output
// sample rate. The rate is only carried in the output buffer format.
func New(k float64, sampleRate int) (*Demodulator, error) {
	if k <= 0 || math.IsInf(k, 0) || math.IsNaN(k) {
		return nil, fmt.Errorf("modulation factor must be positive and finite, got %v", k)
	}

	return &Demodulator{
		factor: k,
		ref:    1 / (2 * math.Pi * k),
		out: &audio.Float32Buffer{
			Format: &audio.Format{NumChannels: monoChannels, SampleRate: sampleRate},
			Data:   []float32{},
		},
	}, nil
}

// Factor returns the modulation factor.
func (d *Demodulator) Factor() float64 {
	return d.factor
}

// Demodulate converts one block of complex samples to one real sample each.
// The returned buffer is reused and only valid until the next call.
func (d *Demodulator) Demodulate(in []complex64) *audio.Float32Buffer {
	if cap(d.out.Data) < len(in) {
		d.out.Data = make([]float32, len(in))
	}
	data := d.out.Data[:len(in)]

	prev := d.prev
	for i, x := range in {
		// x · conj(prev)
		re := float64(real(x))*float64(real(prev)) + float64(imag(x))*float64(imag(prev))
		im := float64(imag(x))*float64(real(prev)) - float64(real(x))*float64(imag(prev))
		data[i] = float32(math.Atan2(im, re) * d.ref)
		prev = x
	}
	d.prev = prev

	d.out.Data = data
	return d.out
}

// Reset forgets the phase reference.
func (d *Demodulator) Reset() {
	d.prev = 0
}
