package big5

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/traditionalchinese"
)

// Encode converts UTF-8 text into Big5. Characters without a Big5 form make
// the conversion fail.
func Encode(text string) ([]byte, error) {
	return traditionalchinese.Big5.NewEncoder().Bytes([]byte(text))
}

// Decode converts Big5 bytes into UTF-8 text.
func Decode(b []byte) (string, error) {
	text, err := traditionalchinese.Big5.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

// Printable renders a token or key for terminal output, falling back to
// hexadecimal for bytes that are not valid Big5.
func Printable(b []byte) string {
	text, err := Decode(b)
	if err != nil || strings.ContainsRune(text, utf8.RuneError) {
		return "0x" + hex.EncodeToString(b)
	}
	return text
}
