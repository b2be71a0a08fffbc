package indexer

import (
	"errors"
	"fmt"

	pogreb2 "github.com/akrylysov/pogreb"
)

// Clear removes every posting and document and resets numbering.
func (r *Service) Clear() error {
	for name, db := range map[string]*pogreb2.DB{
		"posting":  r.pogreb.PostingMapper,
		"document": r.pogreb.DocumentMapper,
	} {
		var keys [][]byte
		iter := db.Items()
		for {
			key, _, err := iter.Next()
			if errors.Is(err, pogreb2.ErrIterationDone) {
				break
			}
			if err != nil {
				return fmt.Errorf("scan %s mapper: %w", name, err)
			}
			keys = append(keys, key)
		}

		for _, key := range keys {
			if err := db.Delete(key); err != nil {
				return fmt.Errorf("delete %s %x: %w", name, key, err)
			}
		}
	}

	// * reset document no counter
	r.no = 0

	return nil
}
