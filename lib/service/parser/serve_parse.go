package parser

import (
	"fmt"

	"go.scnd.dev/open/syrup/posting/lib/service/emitter"
	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
)

// ParsePair calls back once per token with the key split from its value and
// the saturated frequency as length.
func (r *Service) ParsePair(buffer []byte, option *tuple.ParseOption, callback tuple.Callback) error {
	ctx := r.context(option)
	ctx.Emitter = emitter.NewPair(callback)
	return r.run(string(enum.ParseModePair), ctx, buffer)
}

// ParseWord calls back once per whole token.
func (r *Service) ParseWord(buffer []byte, option *tuple.ParseOption, callback tuple.WordCallback) error {
	ctx := r.context(option)
	ctx.Emitter = emitter.NewWord(callback)
	return r.run(string(enum.ParseModeWord), ctx, buffer)
}

// ParseDelim calls back once per first character group, each value opened by
// the option delimiter.
func (r *Service) ParseDelim(buffer []byte, option *tuple.ParseOption, callback tuple.Callback) error {
	ctx := r.context(option)
	ctx.Emitter = emitter.NewDelimited(r.logger, ctx.Delimiter, ctx.Buffer, callback)
	return r.run(string(enum.ParseModeDelim), ctx, buffer)
}

// Parse runs the driver for mode and returns copies of its records. Word
// records carry the significant token bytes as key, no value, and the
// frequency as length.
func (r *Service) Parse(mode enum.ParseMode, buffer []byte, option *tuple.ParseOption) ([]*tuple.Record, error) {
	var records []*tuple.Record
	collect := func(key []byte, value []byte, length uint) {
		records = append(records, &tuple.Record{
			Key:    append([]byte(nil), key...),
			Value:  append([]byte(nil), value...),
			Length: length,
		})
	}

	var err error
	switch mode {
	case enum.ParseModePair:
		err = r.ParsePair(buffer, option, collect)
	case enum.ParseModeDelim:
		err = r.ParseDelim(buffer, option, collect)
	case enum.ParseModeWord:
		err = r.ParseWord(buffer, option, func(token []byte, tail tuple.Tail, frequency uint8) {
			collect(token[:tail.Size()], nil, uint(frequency))
		})
	default:
		return nil, fmt.Errorf("unknown parse mode %q", mode)
	}
	if err != nil {
		return nil, err
	}

	return records, nil
}
