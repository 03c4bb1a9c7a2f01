package presets

import (
	"regexp"
	"strings"
)

// continuationMarker is the newline+indent+ampersand that prefixes every
// entry inside an engines array.
const continuationMarker = "\n    &"

// trailerLen is the number of characters dropped from the end of a
// normalized body (the trailing comma and newline).
const trailerLen = 2

var engineArrayPattern = regexp.MustCompile(`const PrepopulatedEngine\* const engines_(\S+)\[\] = \{([^}]*)\};`)

// EngineList is the ordered engine identifiers declared for one locale.
type EngineList struct {
	Code    string   `json:"code"`
	Engines []string `json:"engines"`
}

// ExtractEngineLists returns one EngineList per engines array declaration
// in text, in order of appearance.
func ExtractEngineLists(text string) []EngineList {
	lists := make([]EngineList, 0)
	for _, m := range engineArrayPattern.FindAllStringSubmatch(text, -1) {
		lists = append(lists, EngineList{
			Code:    m[1],
			Engines: splitEngineBody(m[2]),
		})
	}
	return lists
}

// splitEngineBody strips the continuation markers, drops the last two
// characters unconditionally and splits the rest on commas. A body that does
// not end in ",\n" loses its last two characters of content.
func splitEngineBody(body string) []string {
	runes := []rune(strings.ReplaceAll(body, continuationMarker, ""))
	if len(runes) < trailerLen {
		runes = runes[:0]
	} else {
		runes = runes[:len(runes)-trailerLen]
	}
	return strings.Split(string(runes), ",")
}
