package tokenizer

import (
	"go.scnd.dev/open/syrup/posting/lib/common/frequency"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.uber.org/zap"
)

type Server interface {
	Extract(buffer []byte, query bool, table *frequency.Table) error
	Tokens(buffer []byte, query bool) ([]*tuple.Entry, error)
}

type Service struct {
	logger *zap.Logger
}

func Serve(
	logger *zap.Logger,
) Server {
	return &Service{
		logger: logger,
	}
}
