package indexer

import (
	"errors"
	"fmt"

	pogreb2 "github.com/akrylysov/pogreb"
	"go.scnd.dev/open/syrup/posting/lib/common/pogreb"
	"go.scnd.dev/open/syrup/posting/lib/service/parser"
	"go.scnd.dev/open/syrup/posting/lib/service/tokenizer"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.scnd.dev/open/syrup/posting/lib/util"
	"go.uber.org/zap"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrTokenInvalid     = errors.New("token invalid")
)

type Server interface {
	IndexDocument(path string, content []byte) (uint32, error)
	Lookup(token []byte) ([]*tuple.Hit, error)
	Search(text []byte) ([]*tuple.Score, error)
	Document(number uint32) (string, error)
	Clear() error
	GetNo() uint32
}

type Service struct {
	logger    *zap.Logger
	pogreb    *pogreb.Pogreb
	parser    parser.Server
	tokenizer tokenizer.Server
	no        uint32
}

func Serve(
	logger *zap.Logger,
	pogreb *pogreb.Pogreb,
	parser parser.Server,
	tokenizer tokenizer.Server,
) (Server, error) {
	r := &Service{
		logger:    logger,
		pogreb:    pogreb,
		parser:    parser,
		tokenizer: tokenizer,
	}

	if err := r.initializeNo(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Service) initializeNo() error {
	// * find maximum document number in document mapper
	iter := r.pogreb.DocumentMapper.Items()
	for {
		key, _, err := iter.Next()
		if errors.Is(err, pogreb2.ErrIterationDone) {
			break
		}
		if err != nil {
			return fmt.Errorf("scan document mapper: %w", err)
		}
		if len(key) == 4 {
			r.no = max(r.no, util.BytesToUint32(key))
		}
	}

	if r.no > 0 {
		r.logger.Info("initialized indexer", zap.Uint32("documents", r.no))
	}

	return nil
}

func (r *Service) GetNo() uint32 {
	return r.no
}
