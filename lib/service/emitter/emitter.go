package emitter

import (
	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/type/tuple"
	"go.scnd.dev/open/syrup/posting/lib/util"
)

// Emitter turns the entries of an ordered traversal into posting records.
type Emitter interface {
	Visit(entry *tuple.Entry) error
	Finish() error
}

// Saturate caps a count to the largest frequency a record can carry.
func Saturate(count uint64) uint8 {
	return uint8(min(count, enum.FrequencyLimit))
}

func isDoubleByte(entry *tuple.Entry) bool {
	return util.IsLeadByte(entry.Token[0])
}

var blank = []byte{enum.BlankValue, enum.BlankValue}
