package tuple

// Callback receives one posting record. Key and value are scratch memory that
// is reused after the call returns; copy them to keep them.
//
// For pair records length is the saturated frequency. For delimited records
// length is the number of significant bytes in value.
type Callback func(key []byte, value []byte, length uint)

// WordCallback receives one word record: the token, how many of its bytes are
// significant, and the saturated frequency.
type WordCallback func(token []byte, tail Tail, frequency uint8)

type TailKind uint8

const (
	TailFixed TailKind = iota
	TailLength
)

// Tail tells a word consumer how wide a token is. Fixed tails mark a CJK
// token of a fixed width whose last two bytes are the value; length tails
// carry the byte length of a blank padded ASCII token.
type Tail struct {
	Kind   TailKind
	Fixed  uint8
	Length int
}

func FixedTail(width uint8) Tail {
	return Tail{Kind: TailFixed, Fixed: width}
}

func LengthTail(length int) Tail {
	return Tail{Kind: TailLength, Length: length}
}

// Size returns the number of significant token bytes for either tail kind.
func (r Tail) Size() int {
	if r.Kind == TailFixed {
		return int(r.Fixed)
	}
	return r.Length
}
