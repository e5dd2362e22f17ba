package demod

import (
	"fmt"
	"log/slog"
)

// Config holds the user-facing demodulator settings in Hz.
// A zero ResampleRate disables resampling.
type Config struct {
	SampleRate   uint32 // Input IQ sample rate (required)
	ResampleRate uint32 // Output sample rate (optional)
	Bandwidth    uint32 // Channel filter bandwidth (required)
	Deviation    uint32 // FM deviation (required)
}

// Params are the derived pipeline parameters. They are computed once by
// [Config.Derive] and never modified afterwards.
type Params struct {
	FilterLength      int
	FilterCutoff      float64 // Fraction of the input sample rate
	FilterAttenuation float64 // dB
	FilterScale       float32 // Gain applied to the filter taps

	ResampleRatio float64 // Output rate / input rate, 1 when not resampling
	Resampling    bool

	ModulationFactor float64 // Deviation / output rate

	InputRate  uint32
	OutputRate uint32
}

// Validate checks that required settings are present and within range.
func (c Config) Validate() error {
	if c.SampleRate == 0 {
		return fmt.Errorf("%w: samplerate must be set", ErrInvalidConfig)
	}
	if c.Bandwidth == 0 {
		return fmt.Errorf("%w: bandwidth must be set", ErrInvalidConfig)
	}
	if c.Deviation == 0 {
		return fmt.Errorf("%w: deviation must be set", ErrInvalidConfig)
	}

	cutoff := float64(c.Bandwidth) / float64(c.SampleRate)
	if cutoff >= maxFilterCutoff {
		return fmt.Errorf("%w: bandwidth %d Hz must be below half the sample rate (%d Hz)",
			ErrInvalidConfig, c.Bandwidth, c.SampleRate)
	}

	if c.ResampleRate != 0 {
		ratio := float64(c.ResampleRate) / float64(c.SampleRate)
		if ratio < minResampleRatio || ratio > maxResampleRatio {
			return fmt.Errorf("%w: resample ratio %v out of range (%v to %v)",
				ErrInvalidConfig, ratio, minResampleRatio, maxResampleRatio)
		}
	}

	return nil
}

// Derive validates the configuration and computes the pipeline parameters.
func (c Config) Derive() (Params, error) {
	if err := c.Validate(); err != nil {
		return Params{}, err
	}

	cutoff := float64(c.Bandwidth) / float64(c.SampleRate)
	p := Params{
		FilterLength:      FilterLength,
		FilterCutoff:      cutoff,
		FilterAttenuation: FilterAttenuation,
		FilterScale:       float32(filterScaleFactor * cutoff),
		ResampleRatio:     1.0,
		InputRate:         c.SampleRate,
		OutputRate:        c.SampleRate,
	}

	if c.ResampleRate != 0 {
		p.Resampling = true
		p.ResampleRatio = float64(c.ResampleRate) / float64(c.SampleRate)
		p.OutputRate = c.ResampleRate
	}

	p.ModulationFactor = float64(c.Deviation) / float64(p.OutputRate)

	return p, nil
}

// LogValue implements slog.LogValuer.
func (p Params) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("filter_length", p.FilterLength),
		slog.Float64("filter_cutoff", p.FilterCutoff),
		slog.Float64("filter_attenuation_db", p.FilterAttenuation),
		slog.Float64("filter_scale", float64(p.FilterScale)),
		slog.Bool("resampling", p.Resampling),
		slog.Float64("resample_ratio", p.ResampleRatio),
		slog.Float64("modulation_factor", p.ModulationFactor),
		slog.Uint64("input_rate", uint64(p.InputRate)),
		slog.Uint64("output_rate", uint64(p.OutputRate)),
	)
}
