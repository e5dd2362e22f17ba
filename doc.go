// Package demod implements a streaming FM demodulator for raw IQ data.
//
// Complex baseband samples are read from a byte stream in one of four
// encodings, band-limited by a Kaiser windowed-sinc FIR filter, optionally
// resampled, FM-demodulated with a quadrature discriminator and written back
// as real samples in a caller-selected encoding.
//
// # Sample Encodings
//
//   - [S8]: signed 8-bit, I and Q interleaved (2 bytes per complex sample)
//   - [U8]: unsigned 8-bit, as produced by rtl_sdr (2 bytes)
//   - [I16]: signed 16-bit little-endian (4 bytes)
//   - [F32]: IEEE-754 32-bit float little-endian (8 bytes)
//
// The output uses the same encodings with one real value per sample
// (1, 1, 2 or 4 bytes).
//
// # Quick Start
//
//	cfg := demod.Config{
//	    SampleRate:   2000000,
//	    ResampleRate: 48000,
//	    Bandwidth:    200000,
//	    Deviation:    75000,
//	}
//	params, err := cfg.Derive()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	chain, err := demod.NewChain(params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	in, _ := demod.CodecFor(demod.U8)
//	out, _ := demod.CodecFor(demod.I16)
//	d := &demod.Driver{In: in, Out: out, Chain: chain}
//	stats, err := d.Run(os.Stdin, os.Stdout)
//
// # Streaming Model
//
// The [Driver] reads fixed [BufferSize] chunks. A chunk shorter than
// BufferSize marks the end of the input; it is still processed and written
// before the driver stops. Filter history, resampler state and demodulator
// phase persist across chunks, so output is independent of how the input is
// split into reads.
package demod
