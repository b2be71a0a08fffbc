package tuple

// Entry is one distinct token and the number of times it occurred within a
// single parse call. Entries belong to the frequency table that created them.
type Entry struct {
	Token []byte
	Count uint64
}
