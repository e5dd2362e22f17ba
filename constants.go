package demod

// BufferSize is the number of bytes read from the source per iteration.
const BufferSize = 8192

// Channel filter design
const (
	FilterLength      = 64   // Kaiser FIR taps
	FilterAttenuation = 70.0 // Stopband attenuation in dB (also sets resampler quality)
	filterDelay       = 0.0  // Fractional sample delay of the filter
	filterScaleFactor = 2.0  // Gain = filterScaleFactor * cutoff for unity DC gain
	maxFilterCutoff   = 0.5  // Cutoff is a fraction of the sample rate, below Nyquist
)

// Resampling ratio limits of the streaming resampler.
const (
	minResampleRatio = 1.0 / 256.0
	maxResampleRatio = 256.0
)

// Per-component byte widths
const (
	int8Width    = 1
	int16Width   = 2
	float32Width = 4
	iqComponents = 2 // I and Q per complex sample
)

// Integer narrowing constants
const (
	uint8Span    = 255.0   // Full-scale span of 8-bit encodings
	int8Offset   = 128.0   // Offset between unsigned and signed 8-bit
	int16Divisor = 32768.0 // i16 decode scale
	int16Scale   = 32767.0 // i16 encode scale
	halfSpan     = 2.0     // Maps [-1, 1] to [0, 1] and back
)
