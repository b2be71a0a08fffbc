package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.uber.org/zap"
)

type record struct {
	key    string
	value  string
	length uint
}

func collect(records *[]record) tuple.Callback {
	return func(key []byte, value []byte, length uint) {
		*records = append(*records, record{key: string(key), value: string(value), length: length})
	}
}

func visitAll(t *testing.T, emitter Emitter, entries ...*tuple.Entry) {
	t.Helper()
	for _, entry := range entries {
		require.NoError(t, emitter.Visit(entry))
	}
	require.NoError(t, emitter.Finish())
}

func entry(token string, count uint64) *tuple.Entry {
	return &tuple.Entry{Token: []byte(token), Count: count}
}

func TestSaturate(t *testing.T) {
	assert.Equal(t, uint8(1), Saturate(1))
	assert.Equal(t, uint8(0xA3), Saturate(0xA3))
	assert.Equal(t, uint8(0xA3), Saturate(0xA4))
	assert.Equal(t, uint8(0xA3), Saturate(1000))
}

func TestPair(t *testing.T) {
	var records []record
	visitAll(t, NewPair(collect(&records)),
		entry("hello", 2),
		entry("\xa4\x40\xa4\x48", 1000),
		entry("\xa4\x40\x21\x21", 3),
	)

	assert.Equal(t, []record{
		{key: "hello", value: "  ", length: 2},
		{key: "\xa4\x40", value: "\xa4\x48", length: 0xA3},
		{key: "\xa4\x40", value: "\x21\x21", length: 3},
	}, records)
}

func TestWord(t *testing.T) {
	type word struct {
		token     string
		tail      tuple.Tail
		frequency uint8
	}

	var words []word
	visitAll(t, NewWord(func(token []byte, tail tuple.Tail, frequency uint8) {
		words = append(words, word{token: string(token[:tail.Size()]), tail: tail, frequency: frequency})
	}),
		entry("go", 1),
		entry("\xa4\x40\xa4\x48", 500),
	)

	assert.Equal(t, []word{
		{token: "go  ", tail: tuple.LengthTail(4), frequency: 1},
		{token: "\xa4\x40\xa4\x48", tail: tuple.FixedTail(4), frequency: 0xA3},
	}, words)
}

func TestDelimitedMergesPrefix(t *testing.T) {
	var records []record
	delimiter := [4]byte{'D', 'O', 'C', '1'}
	visitAll(t, NewDelimited(zap.NewNop(), delimiter, NewBuffer(32768), collect(&records)),
		entry("ab", 4),
		entry("\xa4\x40\x21\x21", 1),
		entry("\xa4\x40\xa4\x48", 2),
		entry("\xa4\x48\xa4\x4a", 300),
	)

	assert.Equal(t, []record{
		{key: "ab", value: "DOC1  \x04", length: 7},
		{key: "\xa4\x40", value: "DOC1\x21\x21\x01\xa4\x48\x02", length: 10},
		{key: "\xa4\x48", value: "DOC1\xa4\x4a\xa3", length: 7},
	}, records)
}

func TestDelimitedAsciiKeepsGroup(t *testing.T) {
	var records []record
	delimiter := [4]byte{0, 0, 0, 9}
	emitter := NewDelimited(zap.NewNop(), delimiter, NewBuffer(64), collect(&records))
	visitAll(t, emitter,
		entry("\xa4\x40\xa4\x48", 1),
		entry("zz", 1),
		entry("\xa4\x40\xa4\x4a", 1),
	)

	require.Len(t, records, 2)
	assert.Equal(t, "zz", records[0].key)
	assert.Equal(t, record{key: "\xa4\x40", value: "\x00\x00\x00\x09\xa4\x48\x01\xa4\x4a\x01", length: 10}, records[1])
}

func TestDelimitedEmpty(t *testing.T) {
	var records []record
	visitAll(t, NewDelimited(zap.NewNop(), [4]byte{}, NewBuffer(64), collect(&records)))
	assert.Empty(t, records)
}

func TestDelimitedBufferExhausted(t *testing.T) {
	var records []record
	emitter := NewDelimited(zap.NewNop(), [4]byte{}, NewBuffer(10), collect(&records))
	require.NoError(t, emitter.Visit(entry("\xa4\x40\xa4\x40", 1)))
	require.NoError(t, emitter.Visit(entry("\xa4\x40\xa4\x48", 1)))
	assert.ErrorIs(t, emitter.Visit(entry("\xa4\x40\xa4\x4a", 1)), ErrBufferExhausted)
	assert.Empty(t, records)
}

func TestBuffer(t *testing.T) {
	buffer := NewBuffer(4)
	require.NoError(t, buffer.Write(1, 2, 3))
	assert.ErrorIs(t, buffer.Write(4, 5), ErrBufferExhausted)
	assert.Equal(t, []byte{1, 2, 3}, buffer.Bytes())
	require.NoError(t, buffer.Write(4))
	assert.Equal(t, 4, buffer.Len())

	buffer.Reset()
	assert.Equal(t, 0, buffer.Len())
}
