package resample

// Stopband attenuation delivered by each resampler quality preset,
// (precision bits + 1) * 6.02 dB.
const (
	attenuationQuick = 54.0
	attenuationLow   = 102.0
	attenuationHigh  = 150.0
)

// Rails per complex sample (in-phase, quadrature).
const (
	railI = 0
	railQ = 1
	rails = 2
)

// unityTolerance is how close a ratio must be to 1 to skip resampling.
const unityTolerance = 1e-12
