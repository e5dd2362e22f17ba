package demod

import (
	"fmt"

	"github.com/go-audio/audio"

	"github.com/tphakala/go-fm-demod/internal/filter"
	"github.com/tphakala/go-fm-demod/internal/freqdem"
	"github.com/tphakala/go-fm-demod/internal/resample"
)

// Filter band-limits a block of complex samples in place.
type Filter interface {
	SetScale(scale float32)
	Execute(buf []complex64)
}

// Resampler converts a block of complex samples to the output rate. The
// length of the returned slice is the number of samples produced and may
// vary between calls.
type Resampler interface {
	Resample(in []complex64) ([]complex64, error)
}

// Demodulator turns complex samples into one real sample each.
type Demodulator interface {
	Demodulate(in []complex64) *audio.Float32Buffer
}

// Chain is the ordered filter, resampler and demodulator owned by a Driver.
// Every stage keeps its state between calls to Process.
type Chain struct {
	Filter      Filter
	Resampler   Resampler
	Demodulator Demodulator
}

// NewChain builds the default transform chain for the given parameters.
func NewChain(p Params) (*Chain, error) {
	fir, err := filter.NewKaiserFIR(filter.KaiserParams{
		NumTaps:     p.FilterLength,
		Cutoff:      p.FilterCutoff,
		Attenuation: p.FilterAttenuation,
		Delay:       filterDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to design channel filter: %w", err)
	}
	fir.SetScale(p.FilterScale)

	rs, err := resample.New(float64(p.InputRate), float64(p.OutputRate), p.FilterAttenuation)
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	dem, err := freqdem.New(p.ModulationFactor, int(p.OutputRate))
	if err != nil {
		return nil, fmt.Errorf("failed to create FM demodulator: %w", err)
	}

	return &Chain{
		Filter:      fir,
		Resampler:   rs,
		Demodulator: dem,
	}, nil
}

// Reset returns every stage that keeps history to its initial state.
func (c *Chain) Reset() {
	for _, stage := range []any{c.Filter, c.Resampler, c.Demodulator} {
		if r, ok := stage.(interface{ Reset() }); ok {
			r.Reset()
		}
	}
}

// Process filters buf in place, resamples it and demodulates the result.
func (c *Chain) Process(buf []complex64) ([]float32, error) {
	c.Filter.Execute(buf)

	resampled, err := c.Resampler.Resample(buf)
	if err != nil {
		return nil, fmt.Errorf("resample stage: %w", err)
	}

	out := c.Demodulator.Demodulate(resampled)
	if out == nil {
		return nil, nil
	}
	return out.Data, nil
}
