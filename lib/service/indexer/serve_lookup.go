package indexer

import (
	"bytes"
	"fmt"
	"slices"

	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.scnd.dev/open/syrup/posting/lib/util"
)

// Lookup returns every document holding token with its frequency in that
// document. CJK tokens are found through the group of their first character.
func (r *Service) Lookup(token []byte) ([]*tuple.Hit, error) {
	if len(token) == 0 {
		return nil, ErrTokenInvalid
	}

	key := token
	var suffix []byte
	if util.IsLeadByte(token[0]) {
		if len(token) != int(enum.BigramWidth) {
			return nil, fmt.Errorf("%w: cjk token of %d bytes", ErrTokenInvalid, len(token))
		}
		key, suffix = token[:enum.CharacterWidth], token[enum.CharacterWidth:]
	}

	payload, err := r.pogreb.PostingMapper.Get(key)
	if err != nil {
		return nil, err
	}
	frames, err := util.MapperPayloadExtract(payload)
	if err != nil {
		return nil, fmt.Errorf("posting %x: %w", key, err)
	}

	var hits []*tuple.Hit
	for _, frame := range frames {
		// * frame is delimiter then suffix and frequency triples
		if len(frame) < 7 || (len(frame)-4)%3 != 0 {
			return nil, fmt.Errorf("posting %x: %w", key, util.ErrFrameCorrupt)
		}
		document := util.BytesToUint32(frame[:4])
		for triple := frame[4:]; len(triple) > 0; triple = triple[3:] {
			if suffix == nil || bytes.Equal(triple[:2], suffix) {
				hits = append(hits, &tuple.Hit{Document: document, Frequency: triple[2]})
			}
		}
	}

	return hits, nil
}

// Search tokenizes text as a query and ranks the documents holding every
// query token by their summed frequencies.
func (r *Service) Search(text []byte) ([]*tuple.Score, error) {
	entries, err := r.tokenizer.Tokens(text, true)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	scores := make(map[uint32]uint64)
	matches := make(map[uint32]int)
	for _, entry := range entries {
		hits, err := r.Lookup(entry.Token)
		if err != nil {
			return nil, err
		}
		for _, hit := range hits {
			scores[hit.Document] += uint64(hit.Frequency)
			matches[hit.Document]++
		}
	}

	var results []*tuple.Score
	for document, score := range scores {
		if matches[document] != len(entries) {
			continue
		}
		path, err := r.Document(document)
		if err != nil {
			return nil, err
		}
		results = append(results, &tuple.Score{Document: document, Path: path, Score: score})
	}

	slices.SortFunc(results, func(a, b *tuple.Score) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		if a.Document < b.Document {
			return -1
		}
		if a.Document > b.Document {
			return 1
		}
		return 0
	})

	return results, nil
}
