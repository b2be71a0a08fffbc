package parser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/syrup/posting/lib/common/config"
	"go.scnd.dev/open/syrup/posting/lib/service/emitter"
	"go.scnd.dev/open/syrup/posting/lib/service/tokenizer"
	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.uber.org/zap"
)

var (
	c1 = []byte{0xA4, 0x40}
	c2 = []byte{0xA4, 0x48}
	c3 = []byte{0xA4, 0x4A}
	c4 = []byte{0xB0, 0xEA}
)

func serve(limit int) Server {
	logger := zap.NewNop()
	return Serve(&config.Config{BufferLimit: &limit}, tokenizer.Serve(logger), logger)
}

func join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func TestParsePair(t *testing.T) {
	records, err := serve(enum.BufferLimit).Parse(enum.ParseModePair, join([]byte("Hi hi "), c1, c2), nil)
	require.NoError(t, err)

	assert.Equal(t, []*tuple.Record{
		{Key: []byte("hi"), Value: []byte("  "), Length: 2},
		{Key: c1, Value: c2, Length: 1},
		{Key: c2, Value: []byte{0x21, 0x21}, Length: 1},
	}, records)
}

func TestParseWordQuery(t *testing.T) {
	records, err := serve(enum.BufferLimit).Parse(enum.ParseModeWord, join([]byte("Go "), c1, c2, c3), &tuple.ParseOption{Query: true})
	require.NoError(t, err)

	assert.Equal(t, []*tuple.Record{
		{Key: []byte("go  "), Length: 1},
		{Key: join(c1, c2), Length: 1},
		{Key: join(c2, c3), Length: 1},
	}, records)
}

func TestParseDelim(t *testing.T) {
	option := &tuple.ParseOption{Delimiter: [4]byte{0, 0, 0, 1}}
	records, err := serve(enum.BufferLimit).Parse(enum.ParseModeDelim, join(c1, c2, []byte(" "), c1, c3, []byte(" ok")), option)
	require.NoError(t, err)

	delimiter := option.Delimiter[:]
	assert.Equal(t, []*tuple.Record{
		{Key: []byte("ok"), Value: join(delimiter, []byte{' ', ' ', 1}), Length: 7},
		{Key: c1, Value: join(delimiter, c2, []byte{1}, c3, []byte{1}), Length: 10},
		{Key: c2, Value: join(delimiter, []byte{0x21, 0x21, 1}), Length: 7},
		{Key: c3, Value: join(delimiter, []byte{0x21, 0x21, 1}), Length: 7},
	}, records)
}

func TestParseSaturated(t *testing.T) {
	buffer := bytes.Repeat(join(c1, c2, []byte(" word ")), 1000)
	records, err := serve(enum.BufferLimit).Parse(enum.ParseModePair, buffer, nil)
	require.NoError(t, err)

	require.NotEmpty(t, records)
	for _, record := range records {
		assert.Equal(t, uint(0xA3), record.Length)
	}
}

func TestParseDelimBufferExhausted(t *testing.T) {
	records := 0
	err := serve(10).ParseDelim(join(c1, c2, c1, c3, c1, c4), nil, func(key []byte, value []byte, length uint) {
		records++
	})
	assert.ErrorIs(t, err, emitter.ErrBufferExhausted)
	assert.Equal(t, 0, records)
}

func TestParseIdempotent(t *testing.T) {
	server := serve(enum.BufferLimit)
	buffer := join([]byte("Alpha beta "), c1, c2, c3, []byte(" ALPHA "), c1, c4)
	option := &tuple.ParseOption{Delimiter: [4]byte{'d', 'o', 'c', '0'}}

	for _, mode := range []enum.ParseMode{enum.ParseModePair, enum.ParseModeWord, enum.ParseModeDelim} {
		first, err := server.Parse(mode, buffer, option)
		require.NoError(t, err)
		second, err := server.Parse(mode, buffer, option)
		require.NoError(t, err)
		assert.Equal(t, first, second, "mode %s", mode)
	}
}

func TestParseUnknownMode(t *testing.T) {
	_, err := serve(enum.BufferLimit).Parse(enum.ParseMode("tree"), []byte("abc"), nil)
	assert.Error(t, err)
}
