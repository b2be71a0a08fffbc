package emitter

import (
	"bytes"

	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.uber.org/zap"
)

// Delimited merges consecutive CJK entries sharing their first character into
// one record keyed by that character. The value opens with the delimiter and
// holds a suffix and frequency triple per merged entry. It relies on the
// traversal being sorted.
type Delimited struct {
	logger    *zap.Logger
	callback  tuple.Callback
	delimiter [4]byte
	buffer    *Buffer
	scratch   []byte
	previous  *tuple.Entry
	key       [enum.CharacterWidth]byte
}

func NewDelimited(logger *zap.Logger, delimiter [4]byte, buffer *Buffer, callback tuple.Callback) *Delimited {
	buffer.Reset()
	return &Delimited{
		logger:    logger,
		callback:  callback,
		delimiter: delimiter,
		buffer:    buffer,
		scratch:   make([]byte, 0, len(delimiter)+len(blank)+1),
	}
}

func (r *Delimited) Visit(entry *tuple.Entry) error {
	frequency := Saturate(entry.Count)
	if !isDoubleByte(entry) {
		r.scratch = append(append(append(r.scratch[:0], r.delimiter[:]...), blank...), frequency)
		r.callback(entry.Token, r.scratch, uint(len(r.scratch)))
		return nil
	}

	prefix := entry.Token[:enum.CharacterWidth]
	suffix := entry.Token[enum.CharacterWidth:]

	// * same first character, extend the open group
	if r.previous != nil && bytes.Equal(r.key[:], prefix) {
		if err := r.buffer.Write(suffix[0], suffix[1], frequency); err != nil {
			return err
		}
		r.previous = entry
		return nil
	}

	r.flush()

	// * open a new group
	r.logger.Debug("delimited group opened", zap.Binary("key", prefix))
	copy(r.key[:], prefix)
	if err := r.buffer.Write(r.delimiter[:]...); err != nil {
		return err
	}
	if err := r.buffer.Write(suffix[0], suffix[1], frequency); err != nil {
		return err
	}
	r.previous = entry

	return nil
}

func (r *Delimited) Finish() error {
	r.flush()
	return nil
}

func (r *Delimited) flush() {
	if r.previous == nil {
		return
	}
	r.callback(r.key[:], r.buffer.Bytes(), uint(r.buffer.Len()))
	r.buffer.Reset()
	r.previous = nil
}
