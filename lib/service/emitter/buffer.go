package emitter

import (
	"errors"
	"fmt"
)

var ErrBufferExhausted = errors.New("buffer exhausted")

// Buffer is a growable scratch buffer that refuses to grow past its limit.
type Buffer struct {
	data  []byte
	limit int
}

func NewBuffer(limit int) *Buffer {
	return &Buffer{
		data:  make([]byte, 0, min(limit, 256)),
		limit: limit,
	}
}

func (r *Buffer) Write(p ...byte) error {
	if len(r.data)+len(p) > r.limit {
		return fmt.Errorf("%w: %d of %d bytes used, %d requested", ErrBufferExhausted, len(r.data), r.limit, len(p))
	}
	r.data = append(r.data, p...)
	return nil
}

func (r *Buffer) Reset() {
	r.data = r.data[:0]
}

func (r *Buffer) Bytes() []byte {
	return r.data
}

func (r *Buffer) Len() int {
	return len(r.data)
}
