package tokenizer

import (
	"bytes"

	"go.scnd.dev/open/syrup/posting/lib/common/frequency"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.scnd.dev/open/syrup/posting/lib/util"
	"go.uber.org/zap"
)

// Extract scans buffer up to its end or its first null byte and counts every
// token into table. The buffer is left untouched.
func (r *Service) Extract(buffer []byte, query bool, table *frequency.Table) error {
	if end := bytes.IndexByte(buffer, 0); end >= 0 {
		buffer = buffer[:end]
	}

	var err error
	for p := 0; p < len(buffer); {
		switch {
		case util.IsLeadByte(buffer[p]):
			// * lead byte without its trail byte
			if p+1 >= len(buffer) {
				r.logger.Debug("skipped trailing lead byte", zap.Int("offset", p))
				return nil
			}
			if p, err = r.ExtractIdeograph(buffer, p, query, table); err != nil {
				return err
			}
		case util.IsAlnum(buffer[p]):
			if p, err = r.ExtractAlnum(buffer, p, table); err != nil {
				return err
			}
		default:
			p++
		}
	}

	return nil
}

func (r *Service) Tokens(buffer []byte, query bool) ([]*tuple.Entry, error) {
	table := frequency.NewTable()
	if err := r.Extract(buffer, query, table); err != nil {
		return nil, err
	}

	entries := make([]*tuple.Entry, 0, table.Len())
	_ = table.ForEachInOrder(func(entry *tuple.Entry) error {
		entries = append(entries, entry)
		return nil
	})

	return entries, nil
}
