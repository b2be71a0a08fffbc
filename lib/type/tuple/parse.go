package tuple

type ParseOption struct {
	Delimiter [4]byte
	Query     bool
}

// Record is a copied posting record, used by the preview output.
type Record struct {
	Key    []byte `json:"key"`
	Value  []byte `json:"value"`
	Length uint   `json:"length"`
}

type Hit struct {
	Document  uint32 `json:"document"`
	Frequency uint8  `json:"frequency"`
}

type Score struct {
	Document uint32 `json:"document"`
	Path     string `json:"path"`
	Score    uint64 `json:"score"`
}
