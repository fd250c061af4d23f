package embedding

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Vectors are persisted as little-endian float32 with a 4-byte length header.
// The format is portable across architectures and process restarts.

func encodeVector(v []float32) []byte {
	buf := make([]byte, 4+4*len(v))
	binary.LittleEndian.PutUint32(buf, uint32(len(v)))
	for i, x := range v {
		binary.LittleEndian.PutUint32(buf[4+4*i:], math.Float32bits(x))
	}
	return buf
}

func decodeVector(raw []byte) ([]float32, error) {
	if len(raw) < 4 {
		return nil, fmt.Errorf("vector blob too short: %d bytes", len(raw))
	}
	dim := int(binary.LittleEndian.Uint32(raw))
	if len(raw) != 4+4*dim {
		return nil, fmt.Errorf("vector blob size mismatch: header says %d floats, got %d bytes", dim, len(raw))
	}
	v := make([]float32, dim)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4+4*i:]))
	}
	return v, nil
}
