package main

import (
	"flag"
	"fmt"

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
)

func main() {
	// * parse text flag
	text := flag.String("text", "", "UTF-8 query text")
	flag.Parse()

	if *text == "" {
		gut.Fatal("Text is required. Use -text flag.", fmt.Errorf("missing text"))
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
			func(shutdowner fx.Shutdowner, indexer indexer.Server) {
				invoke(indexer, *text)
				_ = shutdowner.Shutdown()
			},
		),
	).Run()
}

func invoke(indexer indexer.Server, text string) {
	query, err := big5.Encode(text)
	if err != nil {
		gut.Fatal("Unable to encode query as big5", err)
	}

	scores, err := indexer.Search(query)
	if err != nil {
		gut.Fatal("Unable to search", err)
	}

	if len(scores) == 0 {
		fmt.Println("no document matched")
		return
	}
	for _, score := range scores {
		fmt.Printf("%6d\t%d\t%s\n", score.Score, score.Document, score.Path)
	}
}
