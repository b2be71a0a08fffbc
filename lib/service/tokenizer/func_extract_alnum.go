package tokenizer

import (
	"go.scnd.dev/open/syrup/posting/lib/common/frequency"
	"go.scnd.dev/open/syrup/posting/lib/type/enum"
	"go.scnd.dev/open/syrup/posting/lib/util"
)

// ExtractAlnum consumes the ASCII letter and digit run starting at p. Runs of
// a single byte are dropped and longer runs keep their first 32 bytes.
func (r *Service) ExtractAlnum(buffer []byte, p int, table *frequency.Table) (int, error) {
	start := p
	for p < len(buffer) && util.IsAlnum(buffer[p]) {
		p++
	}

	if p-start < 2 {
		return p, nil
	}

	token := make([]byte, 0, enum.TokenLimit)
	for _, b := range buffer[start:min(p, start+enum.TokenLimit)] {
		token = append(token, util.ToLower(b))
	}

	return p, table.Add(token)
}
