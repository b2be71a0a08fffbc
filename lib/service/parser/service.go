package parser

import (
	"go.scnd.dev/open/syrup/posting/lib/common/config"
	"go.scnd.dev/open/syrup/posting/lib/service/tokenizer"
	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.uber.org/zap"
)

type Server interface {
	ParsePair(buffer []byte, option *tuple.ParseOption, callback tuple.Callback) error
	ParseWord(buffer []byte, option *tuple.ParseOption, callback tuple.WordCallback) error
	ParseDelim(buffer []byte, option *tuple.ParseOption, callback tuple.Callback) error
	Parse(mode enum.ParseMode, buffer []byte, option *tuple.ParseOption) ([]*tuple.Record, error)
}

type Service struct {
	logger      *zap.Logger
	tokenizer   tokenizer.Server
	bufferLimit int
}

func Serve(
	config *config.Config,
	tokenizer tokenizer.Server,
	logger *zap.Logger,
) Server {
	limit := enum.BufferLimit
	if config.BufferLimit != nil {
		limit = *config.BufferLimit
	}

	return &Service{
		logger:      logger,
		tokenizer:   tokenizer,
		bufferLimit: limit,
	}
}
