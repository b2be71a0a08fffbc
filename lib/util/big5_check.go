package util

// IsLeadByte reports whether b opens a double byte Big5 character,
// symbols included.
func IsLeadByte(b byte) bool {
	return b > 0xA0
}

// IsIdeographLead reports whether b opens a Big5 ideograph. The 0xA1-0xA3
// symbol rows are excluded.
func IsIdeographLead(b byte) bool {
	return b > 0xA3
}

func IsAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func IsUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func ToLower(b byte) byte {
	if IsUpper(b) {
		return b + 32
	}
	return b
}
