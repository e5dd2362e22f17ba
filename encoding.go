package demod

import (
	"fmt"
	"strings"
)

// Encoding identifies a sample encoding on the wire.
type Encoding int

const (
	// S8 is signed 8-bit.
	S8 Encoding = iota
	// U8 is unsigned 8-bit.
	U8
	// I16 is signed 16-bit little-endian.
	I16
	// F32 is IEEE-754 32-bit float little-endian.
	F32
)

var encodingNames = [...]string{
	S8:  "s8",
	U8:  "u8",
	I16: "i16",
	F32: "f32",
}

// EncodingNames lists the accepted encoding names in declaration order.
func EncodingNames() []string {
	return encodingNames[:]
}

// ParseEncoding returns the encoding for a name such as "u8" or "F32".
func ParseEncoding(name string) (Encoding, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range encodingNames {
		if s == n {
			return Encoding(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

func (e Encoding) valid() bool {
	return e >= S8 && e <= F32
}

// String returns the command-line name of the encoding.
func (e Encoding) String() string {
	if !e.valid() {
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
	return encodingNames[e]
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	if !e.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, int(e))
	}
	return []byte(encodingNames[e]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(text []byte) error {
	v, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
