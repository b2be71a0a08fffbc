package frequency

import (
	"errors"
	"fmt"

	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
)

var ErrTokenLength = errors.New("token length out of range")

// Table counts token occurrences for one parse call.
type Table struct {
	entries *OrderedMap[string, *tuple.Entry]
}

func NewTable() *Table {
	return &Table{
		entries: NewOrderedMap[string, *tuple.Entry](),
	}
}

// FindOrInsert returns the entry for token, creating it with count 1 when it
// does not exist yet. The token bytes are copied.
func (r *Table) FindOrInsert(token []byte) (*tuple.Entry, bool, error) {
	if len(token) == 0 || len(token) > enum.TokenLimit {
		return nil, false, fmt.Errorf("%w: %d bytes", ErrTokenLength, len(token))
	}

	entry, inserted := r.entries.FindOrInsert(string(token), func() *tuple.Entry {
		return &tuple.Entry{
			Token: append([]byte(nil), token...),
			Count: 1,
		}
	})
	return entry, inserted, nil
}

func (r *Table) Increment(entry *tuple.Entry) {
	entry.Count++
}

// Add inserts token or increments its count.
func (r *Table) Add(token []byte) error {
	entry, inserted, err := r.FindOrInsert(token)
	if err != nil {
		return err
	}
	if !inserted {
		r.Increment(entry)
	}
	return nil
}

func (r *Table) ForEachInOrder(visit func(entry *tuple.Entry) error) error {
	return r.entries.ForEachInOrder(func(_ string, entry *tuple.Entry) error {
		return visit(entry)
	})
}

func (r *Table) Len() int {
	return r.entries.Len()
}

// DestroyAll releases every entry. Entries obtained earlier must not be used
// afterwards.
func (r *Table) DestroyAll() {
	_ = r.entries.ForEachInOrder(func(_ string, entry *tuple.Entry) error {
		entry.Token = nil
		return nil
	})
	r.entries.Clear()
}
