// Package buf contains helpers for endian-safe decoding routines.
//
// Spine binary skeletons store every multi-byte number big-endian, which is
// the opposite of the host order on every platform the tool targets.
package buf

import (
	"encoding/binary"
	"math"
)

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// PutU32BE writes v to b in big-endian order. It is a no-op when b is too short.
func PutU32BE(b []byte, v uint32) {
	if len(b) < 4 {
		return
	}
	binary.BigEndian.PutUint32(b, v)
}

// F32BE reads a big-endian IEEE-754 single-precision float from b.
// The bit pattern is preserved exactly, including NaN payloads.
// Returns 0 when b is too short.
func F32BE(b []byte) float32 {
	return math.Float32frombits(U32BE(b))
}

// PutF32BE writes v to b as a big-endian IEEE-754 single-precision float.
// It is a no-op when b is too short.
func PutF32BE(b []byte, v float32) {
	PutU32BE(b, math.Float32bits(v))
}
