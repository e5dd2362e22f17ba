package demod

import (
	"errors"
	"fmt"
	"io"
)

// Stats summarises one run of the streaming driver.
type Stats struct {
	Iterations int   // Chunks processed, including the final short one
	BytesIn    int64 // Bytes read from the source
	BytesOut   int64 // Bytes written to the sink
	SamplesIn  int64 // Complex samples decoded
	SamplesOut int64 // Real samples encoded
}

// Flusher is implemented by sinks that buffer writes, such as *bufio.Writer.
type Flusher interface {
	Flush() error
}

// Driver moves a byte stream through decode, the transform chain and encode.
// It owns its chain and buffers exclusively and is not safe for concurrent use.
type Driver struct {
	In         Codec
	Out        Codec
	Squarewave bool
	Chain      *Chain

	buf     []byte
	samples []complex64
	encoded []byte
}

// Run streams r to w until the input is exhausted. Each iteration reads up
// to BufferSize bytes; a short read ends the stream after that chunk has been
// processed and written. The sink is flushed after every write when it
// implements [Flusher]. Any read, transform or write error stops the stream
// and is returned wrapped with the failing step. The chain is reset first, so
// every Run starts a fresh stream.
func (d *Driver) Run(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	if err := d.init(); err != nil {
		return stats, err
	}
	d.Chain.Reset()

	flusher, _ := w.(Flusher)

	for {
		n, err := io.ReadFull(r, d.buf)
		last := false
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			last = true
		default:
			return stats, fmt.Errorf("read input: %w", err)
		}

		stats.Iterations++
		stats.BytesIn += int64(n)

		decoded, out, err := d.process(d.buf[:n])
		if err != nil {
			return stats, err
		}
		stats.SamplesIn += int64(decoded)
		stats.SamplesOut += int64(len(out) / d.Out.OutputWidth())

		written, err := w.Write(out)
		stats.BytesOut += int64(written)
		if err != nil {
			return stats, fmt.Errorf("write output: %w", err)
		}
		if flusher != nil {
			if err := flusher.Flush(); err != nil {
				return stats, fmt.Errorf("flush output: %w", err)
			}
		}

		if last {
			return stats, nil
		}
	}
}

// ProcessChunk runs one chunk through the pipeline without any I/O and
// returns the encoded output. The returned slice is reused by the next call.
func (d *Driver) ProcessChunk(chunk []byte) ([]byte, error) {
	if err := d.init(); err != nil {
		return nil, err
	}
	_, out, err := d.process(chunk)
	return out, err
}

func (d *Driver) init() error {
	if d.In == nil || d.Out == nil || d.Chain == nil {
		return fmt.Errorf("%w: driver is missing a codec or chain", ErrInvalidConfig)
	}
	if d.buf == nil {
		d.buf = make([]byte, BufferSize)
	}
	return nil
}

func (d *Driver) process(chunk []byte) (int, []byte, error) {
	need := len(chunk) / d.In.InputWidth()
	if cap(d.samples) < need {
		d.samples = make([]complex64, need)
	}
	samples := d.samples[:need]
	n := d.In.Decode(samples, chunk)

	demodulated, err := d.Chain.Process(samples[:n])
	if err != nil {
		return n, nil, err
	}

	d.encoded = d.Out.Encode(d.encoded[:0], demodulated, d.Squarewave)
	return n, d.encoded, nil
}
