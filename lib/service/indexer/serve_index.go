package indexer

import (
	"fmt"

	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.scnd.dev/open/syrup/posting/lib/util"
	"go.uber.org/zap"
)

// IndexDocument assigns the next document number to content and appends its
// delimited records to the posting mapper. Nothing is written when parsing
// fails.
func (r *Service) IndexDocument(path string, content []byte) (uint32, error) {
	no := r.no + 1
	option := &tuple.ParseOption{
		Delimiter: util.Uint32ToDelimiter(no),
	}

	// * collect records before touching the mappers
	var records []*tuple.Record
	if err := r.parser.ParseDelim(content, option, func(key []byte, value []byte, length uint) {
		records = append(records, &tuple.Record{
			Key:    append([]byte(nil), key...),
			Value:  append([]byte(nil), value[:length]...),
			Length: length,
		})
	}); err != nil {
		return 0, fmt.Errorf("parse document %s: %w", path, err)
	}

	for _, record := range records {
		payload, err := r.pogreb.PostingMapper.Get(record.Key)
		if err != nil {
			return 0, fmt.Errorf("get posting %x: %w", record.Key, err)
		}
		if err := r.pogreb.PostingMapper.Put(record.Key, util.MapperPayloadAppend(payload, record.Value)); err != nil {
			return 0, fmt.Errorf("put posting %x: %w", record.Key, err)
		}
	}

	if err := r.pogreb.DocumentMapper.Put(util.Uint32ToBytes(no), []byte(path)); err != nil {
		return 0, fmt.Errorf("put document %s: %w", path, err)
	}

	r.no = no
	r.logger.Debug("indexed document", zap.String("path", path), zap.Uint32("no", no), zap.Int("records", len(records)))

	return no, nil
}

func (r *Service) Document(number uint32) (string, error) {
	value, err := r.pogreb.DocumentMapper.Get(util.Uint32ToBytes(number))
	if err != nil {
		return "", err
	}
	if value == nil {
		return "", fmt.Errorf("%w: %d", ErrDocumentNotFound, number)
	}
	return string(value), nil
}
