package tokenizer

import (
	"go.scnd.dev/open/syrup/posting/lib/common/frequency"
	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/util"
)

// ExtractIdeograph consumes the double byte character at p and the ideograph
// run that follows it, and returns the offset of the first unconsumed byte.
func (r *Service) ExtractIdeograph(buffer []byte, p int, query bool, table *frequency.Table) (int, error) {
	q := p + enum.CharacterWidth
	if !ideographAt(buffer, q) {
		// * isolated ideograph, symbols are dropped
		if ideographAt(buffer, p) {
			return q, table.Add(unigram(buffer[p:q]))
		}
		return q, nil
	}

	if ideographAt(buffer, p) {
		if err := table.Add(buffer[p : q+enum.CharacterWidth]); err != nil {
			return q, err
		}
	}

	// * overlapping bigrams over the rest of the run
	for q += enum.CharacterWidth; ideographAt(buffer, q); q += enum.CharacterWidth {
		if err := table.Add(buffer[q-enum.CharacterWidth : q+enum.CharacterWidth]); err != nil {
			return q, err
		}
	}

	// * a query already matches the last character through its bigram
	if query && ideographAt(buffer, q-2*enum.CharacterWidth) {
		return q, nil
	}

	return q, table.Add(unigram(buffer[q-enum.CharacterWidth : q]))
}

// ideographAt reports whether a complete ideograph starts at offset i.
func ideographAt(buffer []byte, i int) bool {
	return i >= 0 && i+1 < len(buffer) && util.IsIdeographLead(buffer[i])
}

func unigram(character []byte) []byte {
	return []byte{character[0], character[1], enum.UnigramMarker, enum.UnigramMarker}
}
