package parser

import (
	"fmt"

	"go.scnd.dev/open/syrup/posting/lib/common/frequency"
	"go.scnd.dev/open/syrup/posting/lib/service/emitter"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.uber.org/zap"
)

// Context holds the state of one parse call. It is built per call and never
// shared, so concurrent calls on one Service do not interfere.
type Context struct {
	Table     *frequency.Table
	Buffer    *emitter.Buffer
	Delimiter [4]byte
	Query     bool
	Emitter   emitter.Emitter
}

func (r *Service) context(option *tuple.ParseOption) *Context {
	if option == nil {
		option = new(tuple.ParseOption)
	}
	return &Context{
		Table:     frequency.NewTable(),
		Buffer:    emitter.NewBuffer(r.bufferLimit),
		Delimiter: option.Delimiter,
		Query:     option.Query,
	}
}

// run tokenizes buffer and walks the table with the context emitter. The
// table is destroyed on every path.
func (r *Service) run(name string, ctx *Context, buffer []byte) error {
	defer ctx.Table.DestroyAll()

	if err := r.tokenizer.Extract(buffer, ctx.Query, ctx.Table); err != nil {
		return fmt.Errorf("%s tokenize: %w", name, err)
	}

	if err := ctx.Table.ForEachInOrder(ctx.Emitter.Visit); err != nil {
		return fmt.Errorf("%s emit: %w", name, err)
	}
	if err := ctx.Emitter.Finish(); err != nil {
		return fmt.Errorf("%s finish: %w", name, err)
	}

	r.logger.Debug("parsed buffer",
		zap.String("mode", name),
		zap.Int("bytes", len(buffer)),
		zap.Int("entries", ctx.Table.Len()),
		zap.Bool("query", ctx.Query),
	)

	return nil
}
