package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint32Bytes(t *testing.T) {
	b := Uint32ToBytes(0x01020304)
	assert.Equal(t, []byte{1, 2, 3, 4}, b)
	assert.Equal(t, uint32(0x01020304), BytesToUint32(b))
	assert.Equal(t, [4]byte{0, 0, 1, 0}, Uint32ToDelimiter(256))
}

func TestMapperPayload(t *testing.T) {
	var payload []byte
	payload = MapperPayloadAppend(payload, []byte("abc"))
	payload = MapperPayloadAppend(payload, make([]byte, 300))

	frames, err := MapperPayloadExtract(payload)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, []byte("abc"), frames[0])
	assert.Len(t, frames[1], 300)
}

func TestMapperPayloadCorrupt(t *testing.T) {
	payload := MapperPayloadAppend(nil, []byte("abcdef"))
	_, err := MapperPayloadExtract(payload[:4])
	assert.ErrorIs(t, err, ErrFrameCorrupt)
}
