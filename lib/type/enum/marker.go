package enum

const (
	// UnigramMarker fills the two trailing bytes of a single character token.
	UnigramMarker byte = 0x21
	// BlankValue is the value of an ASCII token in every record format.
	BlankValue byte = 0x20
	// FrequencyLimit caps every emitted frequency byte.
	FrequencyLimit uint64 = 0xA3
	TokenLimit     int    = 32
	BufferLimit    int    = 32768
	CharacterWidth int    = 2
	BigramWidth    uint8  = 4
)
