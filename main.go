package main

import "C"

import (
	"fmt"
	"strings"

	"go.scnd.dev/open/syrup/posting/lib/common/big5"
	"go.scnd.dev/open/syrup/posting/lib/common/config"
	"go.scnd.dev/open/syrup/posting/lib/service/parser"
	"go.scnd.dev/open/syrup/posting/lib/service/tokenizer"
	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.uber.org/zap"
)

func main() {}

//export parse_preview
func parse_preview(text *C.char, mode *C.char, query C.int) *C.char {
	result, err := preview(C.GoString(text), enum.ParseMode(C.GoString(mode)), query != 0)
	if err != nil {
		return C.CString("error: " + err.Error())
	}
	return C.CString(result)
}

// preview parses UTF-8 text with a fresh parser and lists its records, one per
// line.
func preview(text string, mode enum.ParseMode, query bool) (string, error) {
	buffer, err := big5.Encode(text)
	if err != nil {
		return "", err
	}

	logger := zap.NewNop()
	limit := enum.BufferLimit
	server := parser.Serve(&config.Config{BufferLimit: &limit}, tokenizer.Serve(logger), logger)

	records, err := server.Parse(mode, buffer, &tuple.ParseOption{Query: query, Delimiter: [4]byte{'?', '?', '?', '?'}})
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, record := range records {
		fmt.Fprintf(&out, "%s\t%x\t%d\n", big5.Printable(record.Key), record.Value, record.Length)
	}
	return out.String(), nil
}
