package enum

type ParseMode string

const (
	ParseModePair  ParseMode = "pair"
	ParseModeWord  ParseMode = "word"
	ParseModeDelim ParseMode = "delim"
)

var ParseModes = map[string]ParseMode{
	string(ParseModePair):  ParseModePair,
	string(ParseModeWord):  ParseModeWord,
	string(ParseModeDelim): ParseModeDelim,
}
