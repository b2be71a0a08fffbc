package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/syrup/posting/lib/common/big5"
	"go.scnd.dev/open/syrup/posting/lib/common/config"
	"go.scnd.dev/open/syrup/posting/lib/common/fxo"
	"go.scnd.dev/open/syrup/posting/lib/common/logger"
	"go.scnd.dev/open/syrup/posting/lib/common/pogreb"
	"go.scnd.dev/open/syrup/posting/lib/service/indexer"
	"go.scnd.dev/open/syrup/posting/lib/service/parser"
	"go.scnd.dev/open/syrup/posting/lib/service/tokenizer"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	// * parse flags
	pattern := flag.String("glob", "", "glob of documents to index")
	utf8 := flag.Bool("utf8", false, "documents are UTF-8 and get converted to big5")
	reset := flag.Bool("clear", false, "clear the index before construction")
	flag.Parse()

	if *pattern == "" {
		gut.Fatal("Glob is required. Use -glob flag.", fmt.Errorf("missing glob"))
	}

	// * main fx application
	fx.New(
		fxo.Option(),
		fx.Provide(
			config.Init,
			logger.Init,
			pogreb.Init,
			tokenizer.Serve,
			parser.Serve,
			indexer.Serve,
		),
		fx.Invoke(
			func(shutdowner fx.Shutdowner, logger *zap.Logger, indexer indexer.Server) {
				invoke(logger, indexer, *pattern, *utf8, *reset)
				_ = shutdowner.Shutdown()
			},
		),
	).Run()
}

func invoke(logger *zap.Logger, indexer indexer.Server, pattern string, utf8 bool, reset bool) {
	if reset {
		if err := indexer.Clear(); err != nil {
			gut.Fatal("unable to clear index", err)
		}
	}

	// * glob documents
	matches, err := filepath.Glob(pattern)
	if err != nil {
		gut.Fatal("invalid glob", err)
	}

	// * index each document
	for _, filePath := range matches {
		content, err := os.ReadFile(filePath)
		if err != nil {
			logger.Warn("unable to read document", zap.String("path", filePath), zap.Error(err))
			continue
		}

		if utf8 {
			if content, err = big5.Encode(string(content)); err != nil {
				logger.Warn("unable to convert document", zap.String("path", filePath), zap.Error(err))
				continue
			}
		}

		no, err := indexer.IndexDocument(filePath, content)
		if err != nil {
			logger.Warn("unable to index document", zap.String("path", filePath), zap.Error(err))
			continue
		}
		logger.Info("indexed document", zap.String("path", filePath), zap.Uint32("no", no))
	}

	fmt.Printf("finished indexing %d documents\n", indexer.GetNo())
}
