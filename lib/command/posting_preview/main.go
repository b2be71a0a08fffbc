package main

import (
	"flag"
	"fmt"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/syrup/posting/lib/common/big5"
	"go.scnd.dev/open/syrup/posting/lib/common/config"
	"go.scnd.dev/open/syrup/posting/lib/common/fxo"
	"go.scnd.dev/open/syrup/posting/lib/common/logger"
	"go.scnd.dev/open/syrup/posting/lib/service/parser"
	"go.scnd.dev/open/syrup/posting/lib/service/tokenizer"
	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.uber.org/fx"
)

func main() {
	// * parse flags
	text := flag.String("text", "", "UTF-8 text to parse")
	mode := flag.String("mode", string(enum.ParseModePair), "record format: pair, word or delim")
	query := flag.Bool("query", false, "tokenize as a search query")
	delimiter := flag.String("delimiter", "????", "4 byte group delimiter for delim mode")
	flag.Parse()

	if *text == "" {
		gut.Fatal("Text is required. Use -text flag.", fmt.Errorf("missing text"))
	}
	parseMode, ok := enum.ParseModes[*mode]
	if !ok {
		gut.Fatal("Unknown mode", fmt.Errorf("mode %q", *mode))
	}
	if len(*delimiter) != 4 {
		gut.Fatal("Delimiter must be 4 bytes", fmt.Errorf("delimiter %q", *delimiter))
	}

	option := &tuple.ParseOption{Query: *query}
	copy(option.Delimiter[:], *delimiter)

	// * main fx application
	fx.New(
		fxo.Option(),
		fx.Provide(
			config.Init,
			logger.Init,
			tokenizer.Serve,
			parser.Serve,
		),
		fx.Invoke(
			func(shutdowner fx.Shutdowner, parser parser.Server) {
				invoke(shutdowner, parser, parseMode, *text, option)
			},
		),
	).Run()
}

func invoke(shutdowner fx.Shutdowner, parser parser.Server, mode enum.ParseMode, text string, option *tuple.ParseOption) {
	defer func() {
		_ = shutdowner.Shutdown()
	}()

	// * encode text into big5
	buffer, err := big5.Encode(text)
	if err != nil {
		gut.Fatal("Unable to encode text as big5", err)
	}

	records, err := parser.Parse(mode, buffer, option)
	if err != nil {
		gut.Fatal("Unable to parse text", err)
	}

	for _, record := range records {
		fmt.Printf("%s\t%s\t%d\n", big5.Printable(record.Key), FormatValue(mode, record.Value), record.Length)
	}
}

// FormatValue renders a record value, hex encoding the binary parts of a
// delimited group.
func FormatValue(mode enum.ParseMode, value []byte) string {
	if mode != enum.ParseModeDelim || len(value) < 4 {
		return big5.Printable(value)
	}

	out := fmt.Sprintf("[%x]", value[:4])
	for triple := value[4:]; len(triple) >= 3; triple = triple[3:] {
		out += fmt.Sprintf(" %s:%d", big5.Printable(triple[:2]), triple[2])
	}
	return out
}
