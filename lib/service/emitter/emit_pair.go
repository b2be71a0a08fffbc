package emitter

import (
	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
)

// Pair emits one record per entry. A CJK token is split after its first
// character; an ASCII token keeps its bytes as key and a blank value.
type Pair struct {
	callback tuple.Callback
}

func NewPair(callback tuple.Callback) *Pair {
	return &Pair{
		callback: callback,
	}
}

func (r *Pair) Visit(entry *tuple.Entry) error {
	frequency := uint(Saturate(entry.Count))
	if isDoubleByte(entry) {
		r.callback(entry.Token[:enum.CharacterWidth], entry.Token[enum.CharacterWidth:], frequency)
		return nil
	}

	r.callback(entry.Token, blank, frequency)
	return nil
}

func (r *Pair) Finish() error {
	return nil
}
