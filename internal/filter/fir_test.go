package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-fm-demod/internal/testutil"
)

func newChannelFIR(t *testing.T) *FIR {
	t.Helper()
	fir, err := NewKaiserFIR(channelParams(testCutoff))
	require.NoError(t, err)
	fir.SetScale(2 * testCutoff)
	return fir
}

func TestFIR_ImpulseResponse(t *testing.T) {
	fir := newChannelFIR(t)

	buf := make([]complex64, channelTaps+8)
	buf[0] = complex(1, -1)
	fir.Execute(buf)

	taps := fir.Taps()
	scale := fir.Scale()
	for n, h := range taps {
		want := complex(h*scale, -h*scale)
		testutil.AssertComplexNear(t, want, buf[n], 1e-6, "sample %d", n)
	}
	for n := channelTaps; n < len(buf); n++ {
		testutil.AssertComplexNear(t, 0, buf[n], 1e-9, "sample %d after impulse", n)
	}
}

func TestFIR_BlockSplitMatchesWhole(t *testing.T) {
	input := testutil.Tone(1000, 0.03)

	whole := append([]complex64(nil), input...)
	newChannelFIR(t).Execute(whole)

	split := append([]complex64(nil), input...)
	fir := newChannelFIR(t)
	for _, cut := range [][2]int{{0, 10}, {10, 11}, {11, 500}, {500, 1000}} {
		fir.Execute(split[cut[0]:cut[1]])
	}

	for i := range whole {
		testutil.AssertComplexNear(t, whole[i], split[i], 1e-5, "sample %d", i)
	}
}

func TestFIR_DCSettlesToUnity(t *testing.T) {
	fir := newChannelFIR(t)

	buf := make([]complex64, 4*channelTaps)
	for i := range buf {
		buf[i] = complex(0.5, -0.25)
	}
	fir.Execute(buf)

	for _, s := range buf[channelTaps:] {
		testutil.AssertComplexNear(t, complex(0.5, -0.25), s, 0.01)
	}
}

func TestFIR_StopbandToneAttenuated(t *testing.T) {
	fir := newChannelFIR(t)

	buf := testutil.Tone(2048, 0.35)
	fir.Execute(buf)

	for _, s := range buf[channelTaps:] {
		assert.Less(t, float64(real(s)*real(s)+imag(s)*imag(s)), 1e-5)
	}
}

func TestFIR_EmptyBlockKeepsHistory(t *testing.T) {
	a := newChannelFIR(t)
	b := newChannelFIR(t)

	first := testutil.Tone(32, 0.01)
	a.Execute(append([]complex64(nil), first...))
	b.Execute(append([]complex64(nil), first...))
	a.Execute(nil)

	second := testutil.Tone(32, 0.02)
	outA := append([]complex64(nil), second...)
	outB := append([]complex64(nil), second...)
	a.Execute(outA)
	b.Execute(outB)

	assert.Equal(t, outB, outA)
}

func TestFIR_Reset(t *testing.T) {
	fir := newChannelFIR(t)
	fir.Execute(testutil.Tone(100, 0.05))
	fir.Reset()

	buf := make([]complex64, 16)
	fir.Execute(buf)
	testutil.AssertAllNear(t, realParts(buf), 0, 0)
}

func realParts(buf []complex64) []float32 {
	out := make([]float32, len(buf))
	for i, s := range buf {
		out[i] = real(s)
	}
	return out
}

func BenchmarkFIR_Execute4096(b *testing.B) {
	fir, err := NewKaiserFIR(channelParams(testCutoff))
	require.NoError(b, err)
	buf := testutil.Tone(4096, 0.01)

	b.SetBytes(int64(len(buf) * 8))
	for b.Loop() {
		fir.Execute(buf)
	}
}
