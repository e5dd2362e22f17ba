package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-fm-demod/internal/testutil"
)

const (
	// Test tolerances
	windowTolerance = 1e-10
	tapTolerance    = 1e-12

	// Channel filter parameters used by the demodulator
	channelTaps        = 64
	channelAttenuation = 70.0
	testCutoff         = 0.1 // 200 kHz bandwidth at 2 MS/s
	testBeta           = 6.7551

	// dB thresholds
	passbandRippleDB = 0.5
	stopbandFloorDB  = -55.0
)

func channelParams(cutoff float64) KaiserParams {
	return KaiserParams{
		NumTaps:     channelTaps,
		Cutoff:      cutoff,
		Attenuation: channelAttenuation,
	}
}

func TestKaiserWindow_Symmetry(t *testing.T) {
	tests := []struct {
		name   string
		length int
		beta   float64
	}{
		{"odd_length", 21, testBeta},
		{"even_length", channelTaps, testBeta},
		{"rectangular", 16, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := KaiserWindow(tt.length, tt.beta)

			assert.Len(t, window, tt.length)
			testutil.AssertSymmetric(t, window, windowTolerance)
			testutil.AssertAllInRange(t, window, 0, 1+windowTolerance)
		})
	}
}

func TestKaiserWindow_EdgeCases(t *testing.T) {
	assert.Empty(t, KaiserWindow(0, testBeta))
	assert.Empty(t, KaiserWindow(-1, testBeta))

	single := KaiserWindow(1, testBeta)
	require.Len(t, single, 1)
	assert.InDelta(t, 1.0, single[0], windowTolerance)

	// β = 0 degenerates to a rectangular window.
	testutil.AssertAllNear(t, KaiserWindow(8, 0), 1.0, windowTolerance)
}

func TestKaiserParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  KaiserParams
		wantErr bool
	}{
		{"valid", channelParams(testCutoff), false},
		{"too_short", KaiserParams{NumTaps: 2, Cutoff: testCutoff, Attenuation: 70}, true},
		{"too_long", KaiserParams{NumTaps: 10000, Cutoff: testCutoff, Attenuation: 70}, true},
		{"zero_cutoff", channelParams(0), true},
		{"nyquist_cutoff", channelParams(0.5), true},
		{"negative_attenuation", KaiserParams{NumTaps: 64, Cutoff: testCutoff, Attenuation: -1}, true},
		{"delay_out_of_range", KaiserParams{NumTaps: 64, Cutoff: testCutoff, Attenuation: 70, Delay: 0.75}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDesignKaiser_Shape(t *testing.T) {
	taps, err := DesignKaiser(channelParams(testCutoff))
	require.NoError(t, err)
	require.Len(t, taps, channelTaps)

	testutil.AssertSymmetric(t, taps, tapTolerance)
	testutil.AssertNoNaNOrInf(t, taps)

	// The two centre taps of an even-length design are the largest.
	centre := taps[channelTaps/2]
	for i, h := range taps {
		assert.LessOrEqual(t, h, centre+tapTolerance, "tap %d exceeds centre", i)
	}
}

func TestDesignKaiser_UnityGainAfterScale(t *testing.T) {
	for _, cutoff := range []float64{0.05, testCutoff, 0.2, 0.3} {
		taps, err := DesignKaiser(channelParams(cutoff))
		require.NoError(t, err)

		scaled := make([]float64, len(taps))
		for i, h := range taps {
			scaled[i] = h * 2 * cutoff
		}
		testutil.AssertDCGain(t, scaled, 1.0, 0.02)
	}
}

func TestDesignKaiser_FrequencyResponse(t *testing.T) {
	fir, err := NewKaiserFIR(channelParams(testCutoff))
	require.NoError(t, err)

	response := ComputeFrequencyResponse(fir.Taps(), 2*testCutoff, 1024)

	passband := MagnitudeDB(response.At(testCutoff / 2))
	assert.InDelta(t, 0.0, passband, passbandRippleDB, "passband gain at fc/2")

	for _, f := range []float64{0.2, 0.3, 0.4, 0.5} {
		db := MagnitudeDB(response.At(f))
		assert.Less(t, db, stopbandFloorDB, "stopband leakage at f=%v", f)
	}
}

func TestComputeFrequencyResponse_Bins(t *testing.T) {
	response := ComputeFrequencyResponse([]float32{1}, 1, 256)

	require.Len(t, response.Frequencies, 257)
	assert.InDelta(t, 0.0, response.Frequencies[0], tapTolerance)
	assert.InDelta(t, 0.5, response.Frequencies[256], tapTolerance)
	testutil.AssertAllNear(t, response.Magnitude, 1.0, 1e-9)
}

func TestMagnitudeDB(t *testing.T) {
	assert.InDelta(t, 0.0, MagnitudeDB(1), 1e-12)
	assert.InDelta(t, -20.0, MagnitudeDB(0.1), 1e-9)
	assert.InDelta(t, -200.0, MagnitudeDB(0), 1e-9)
}
