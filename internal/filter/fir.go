package filter

import (
	"github.com/tphakala/simd/f32"
)

// FIR applies real-valued taps to a stream of complex samples.
//
// The in-phase and quadrature rails are filtered independently. The last
// NumTaps-1 input samples of each rail are kept between calls, so a stream
// split into blocks filters exactly like the unsplit stream.
type FIR struct {
	taps  []float32
	scale float32

	// kernel holds the taps reversed and multiplied by scale, the layout
	// f32.ConvolveValid expects for a causal FIR.
	kernel []float32

	// re and im hold NumTaps-1 samples of history followed by the current block.
	re, im []float32

	outRe, outIm []float32
}

// NewFIR creates a filter running the given taps with unity output scale.
func NewFIR(taps []float64) *FIR {
	f := &FIR{
		taps:   make([]float32, len(taps)),
		kernel: make([]float32, len(taps)),
		re:     make([]float32, len(taps)-1),
		im:     make([]float32, len(taps)-1),
	}
	for i, h := range taps {
		f.taps[i] = float32(h)
	}
	f.SetScale(1)
	return f
}

// NewKaiserFIR designs Kaiser taps for params and wraps them in a FIR.
func NewKaiserFIR(params KaiserParams) (*FIR, error) {
	taps, err := DesignKaiser(params)
	if err != nil {
		return nil, err
	}
	return NewFIR(taps), nil
}

// SetScale sets the gain applied to every output sample.
func (f *FIR) SetScale(scale float32) {
	f.scale = scale
	n := len(f.taps)
	for i, h := range f.taps {
		f.kernel[n-1-i] = h
	}
	f32.Scale(f.kernel, f.kernel, scale)
}

// Scale returns the current output gain.
func (f *FIR) Scale() float32 {
	return f.scale
}

// Len returns the number of taps.
func (f *FIR) Len() int {
	return len(f.taps)
}

// Taps returns a copy of the unscaled taps.
func (f *FIR) Taps() []float32 {
	out := make([]float32, len(f.taps))
	copy(out, f.taps)
	return out
}

// Execute filters buf in place.
func (f *FIR) Execute(buf []complex64) {
	n := len(buf)
	if n == 0 {
		return
	}

	hist := len(f.taps) - 1
	f.re = grow(f.re, hist+n)
	f.im = grow(f.im, hist+n)
	f.outRe = grow(f.outRe, n)
	f.outIm = grow(f.outIm, n)

	for i, s := range buf {
		f.re[hist+i] = real(s)
		f.im[hist+i] = imag(s)
	}

	f32.ConvolveValid(f.outRe, f.re, f.kernel)
	f32.ConvolveValid(f.outIm, f.im, f.kernel)

	for i := range buf {
		buf[i] = complex(f.outRe[i], f.outIm[i])
	}

	copy(f.re[:hist], f.re[n:n+hist])
	copy(f.im[:hist], f.im[n:n+hist])
	f.re = f.re[:hist]
	f.im = f.im[:hist]
}

// Reset clears the filter history.
func (f *FIR) Reset() {
	hist := len(f.taps) - 1
	f.re = f.re[:hist]
	f.im = f.im[:hist]
	clear(f.re)
	clear(f.im)
}

// grow returns s resliced to length n, reallocating when capacity is short.
// Existing elements are preserved.
func grow(s []float32, n int) []float32 {
	if cap(s) >= n {
		return s[:n]
	}
	out := make([]float32, n)
	copy(out, s)
	return out
}
