package util

import (
	"encoding/binary"
	"errors"
)

var ErrFrameCorrupt = errors.New("posting frame corrupt")

func BytesToUint32(b []byte) uint32 {
	return uint32(b[0])<<24 |
		uint32(b[1])<<16 |
		uint32(b[2])<<8 |
		uint32(b[3])
}

func Uint32ToBytes(value uint32) []byte {
	return []byte{
		byte(value >> 24),
		byte(value >> 16),
		byte(value >> 8),
		byte(value),
	}
}

func Uint32ToDelimiter(value uint32) [4]byte {
	return [4]byte{
		byte(value >> 24),
		byte(value >> 16),
		byte(value >> 8),
		byte(value),
	}
}

// MapperPayloadAppend appends one length prefixed frame to an existing
// posting payload.
func MapperPayloadAppend(payload []byte, frame []byte) []byte {
	payload = binary.AppendUvarint(payload, uint64(len(frame)))
	return append(payload, frame...)
}

// MapperPayloadExtract splits a posting payload back into its frames.
func MapperPayloadExtract(payload []byte) ([][]byte, error) {
	var frames [][]byte
	for len(payload) > 0 {
		size, n := binary.Uvarint(payload)
		if n <= 0 || uint64(len(payload)-n) < size {
			return nil, ErrFrameCorrupt
		}
		frames = append(frames, payload[n:n+int(size)])
		payload = payload[n+int(size):]
	}
	return frames, nil
}
