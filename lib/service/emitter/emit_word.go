package emitter

import (
	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
)

// Word emits every token whole. CJK tokens carry a fixed tail of the bigram
// width; ASCII tokens are padded with two blanks and carry their padded
// length.
type Word struct {
	callback tuple.WordCallback
	scratch  []byte
}

func NewWord(callback tuple.WordCallback) *Word {
	return &Word{
		callback: callback,
		scratch:  make([]byte, 0, enum.TokenLimit+2),
	}
}

func (r *Word) Visit(entry *tuple.Entry) error {
	frequency := Saturate(entry.Count)
	if isDoubleByte(entry) {
		r.callback(entry.Token, tuple.FixedTail(enum.BigramWidth), frequency)
		return nil
	}

	r.scratch = append(append(r.scratch[:0], entry.Token...), blank...)
	r.callback(r.scratch, tuple.LengthTail(len(r.scratch)), frequency)
	return nil
}

func (r *Word) Finish() error {
	return nil
}
