package filter

const (
	// Filter design constants
	minFilterTaps = 3
	maxFilterTaps = 8191

	// Window normalization
	windowNormalizationFactor = 2.0

	// Cutoff is a fraction of the sample rate; 0.5 is Nyquist.
	maxCutoff = 0.5

	// Sinc function constants
	sincZeroThreshold = 1e-10

	// Frequency response defaults
	defaultResponsePoints = 512
	responseOversample    = 2     // FFT size per response point
	minMagnitude          = 1e-10 // Avoid log(0)
	dbMultiplier          = 20.0  // 20*log10 for magnitude
)
