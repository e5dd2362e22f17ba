package demod

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
)

// Codec converts between wire bytes and samples for one encoding.
//
// Decode turns interleaved I/Q components into complex samples; Encode
// shapes and narrows demodulated real samples. Each implementation declares
// its byte widths so callers never size buffers from encoding constants.
type Codec interface {
	// Encoding returns the encoding handled by the codec.
	Encoding() Encoding

	// InputWidth is the number of bytes per complex (I/Q) input sample.
	InputWidth() int

	// OutputWidth is the number of bytes per real output sample.
	OutputWidth() int

	// Decode converts whole samples from src into dst and returns the number
	// written: min(len(dst), len(src)/InputWidth()). A trailing partial
	// sample is ignored.
	Decode(dst []complex64, src []byte) int

	// Encode appends the narrowed form of each sample to dst,
	// len(src)*OutputWidth() bytes in total. Integer encodings shape first:
	// with squarewave set, positive values become +1 and negative values -1,
	// otherwise values are clamped to [-1, 1]. F32 writes samples unchanged.
	Encode(dst []byte, src []float32, squarewave bool) []byte
}

// CodecFor returns the codec for an encoding.
func CodecFor(e Encoding) (Codec, error) {
	switch e {
	case S8:
		return s8Codec{}, nil
	case U8:
		return u8Codec{}, nil
	case I16:
		return i16Codec{}, nil
	case F32:
		return f32Codec{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, int(e))
	}
}

// DecodeIQ decodes every whole complex sample in src.
func DecodeIQ(e Encoding, src []byte) ([]complex64, error) {
	c, err := CodecFor(e)
	if err != nil {
		return nil, err
	}
	dst := make([]complex64, len(src)/c.InputWidth())
	return dst[:c.Decode(dst, src)], nil
}

// EncodeReal encodes samples into a newly allocated byte slice.
func EncodeReal(e Encoding, src []float32, squarewave bool) ([]byte, error) {
	c, err := CodecFor(e)
	if err != nil {
		return nil, err
	}
	return c.Encode(make([]byte, 0, len(src)*c.OutputWidth()), src, squarewave), nil
}

// shape applies square-wave shaping or clamping. NaN maps to zero.
func shape(v float32, squarewave bool) float32 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	if squarewave {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		}
		return v
	}
	return min(max(v, -1), 1)
}

// toUnit maps a shaped value from [-1, 1] to [0, 255].
func toUnit(v float32) float64 {
	return uint8Span * (float64(v) + 1) / halfSpan
}

type s8Codec struct{}

func (s8Codec) Encoding() Encoding { return S8 }
func (s8Codec) InputWidth() int    { return iqComponents * int8Width }
func (s8Codec) OutputWidth() int   { return int8Width }

func (c s8Codec) Decode(dst []complex64, src []byte) int {
	n := min(len(dst), len(src)/c.InputWidth())
	for i := range n {
		re := float32(int8(src[2*i]))
		im := float32(int8(src[2*i+1]))
		dst[i] = complex(
			halfSpan*((re+int8Offset)/uint8Span)-1,
			halfSpan*((im+int8Offset)/uint8Span)-1,
		)
	}
	return n
}

func (s8Codec) Encode(dst []byte, src []float32, squarewave bool) []byte {
	dst = slices.Grow(dst, len(src)*int8Width)
	for _, v := range src {
		q := int8(math.Round(toUnit(shape(v, squarewave)) - int8Offset))
		dst = append(dst, byte(q))
	}
	return dst
}

type u8Codec struct{}

func (u8Codec) Encoding() Encoding { return U8 }
func (u8Codec) InputWidth() int    { return iqComponents * int8Width }
func (u8Codec) OutputWidth() int   { return int8Width }

func (c u8Codec) Decode(dst []complex64, src []byte) int {
	n := min(len(dst), len(src)/c.InputWidth())
	for i := range n {
		re := float32(src[2*i])
		im := float32(src[2*i+1])
		dst[i] = complex(
			halfSpan*(re/uint8Span)-1,
			halfSpan*(im/uint8Span)-1,
		)
	}
	return n
}

func (u8Codec) Encode(dst []byte, src []float32, squarewave bool) []byte {
	dst = slices.Grow(dst, len(src)*int8Width)
	for _, v := range src {
		dst = append(dst, uint8(math.Round(toUnit(shape(v, squarewave)))))
	}
	return dst
}

type i16Codec struct{}

func (i16Codec) Encoding() Encoding { return I16 }
func (i16Codec) InputWidth() int    { return iqComponents * int16Width }
func (i16Codec) OutputWidth() int   { return int16Width }

func (c i16Codec) Decode(dst []complex64, src []byte) int {
	n := min(len(dst), len(src)/c.InputWidth())
	for i := range n {
		b := src[i*c.InputWidth():]
		re := float32(int16(binary.LittleEndian.Uint16(b)))
		im := float32(int16(binary.LittleEndian.Uint16(b[int16Width:])))
		dst[i] = complex(re/int16Divisor, im/int16Divisor)
	}
	return n
}

func (i16Codec) Encode(dst []byte, src []float32, squarewave bool) []byte {
	dst = slices.Grow(dst, len(src)*int16Width)
	for _, v := range src {
		q := int16(math.Round(float64(shape(v, squarewave)) * int16Scale))
		dst = binary.LittleEndian.AppendUint16(dst, uint16(q))
	}
	return dst
}

type f32Codec struct{}

func (f32Codec) Encoding() Encoding { return F32 }
func (f32Codec) InputWidth() int    { return iqComponents * float32Width }
func (f32Codec) OutputWidth() int   { return float32Width }

func (c f32Codec) Decode(dst []complex64, src []byte) int {
	n := min(len(dst), len(src)/c.InputWidth())
	for i := range n {
		b := src[i*c.InputWidth():]
		re := math.Float32frombits(binary.LittleEndian.Uint32(b))
		im := math.Float32frombits(binary.LittleEndian.Uint32(b[float32Width:]))
		dst[i] = complex(re, im)
	}
	return n
}

// Encode writes the raw bits of every sample; squarewave does not apply.
func (f32Codec) Encode(dst []byte, src []float32, _ bool) []byte {
	dst = slices.Grow(dst, len(src)*float32Width)
	for _, v := range src {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}
