package presets

import (
	"regexp"
	"strings"
)

const (
	unhandledDirective    = "UNHANDLED_COUNTRY"
	endUnhandledDirective = "END_UNHANDLED_COUNTRIES"

	// Both directives are only recognized at exactly four spaces of indent.
	directiveIndent = "    "
)

var (
	unhandledPattern    = regexp.MustCompile(`UNHANDLED_COUNTRY\((.+?), (.+?)\)`)
	endUnhandledPattern = regexp.MustCompile(`END_UNHANDLED_COUNTRIES\((.+?), (.+?)\)`)
)

// Fallback maps an unhandled country to the country whose presets it uses.
type Fallback struct {
	Code   string
	Target string
}

// UnhandledResult is the outcome of AggregateUnhandled.
type UnhandledResult struct {
	// Fallbacks in the order they were recorded.
	Fallbacks []Fallback
	// Blocks is the number of terminator lines seen.
	Blocks int
	// Dangling holds codes collected after the last terminator.
	Dangling []string
}

// pendingBucket collects unhandled codes until the next terminator.
type pendingBucket []string

func (b pendingBucket) flush(target string, into []Fallback) []Fallback {
	for _, code := range b {
		into = append(into, Fallback{Code: code, Target: target})
	}
	return into
}

// AggregateUnhandled walks text line by line, collecting UNHANDLED_COUNTRY
// codes and assigning them to the target of the next END_UNHANDLED_COUNTRIES
// line. A directive line whose arguments do not match returns a
// *GrammarMismatchError and no partial result.
func AggregateUnhandled(text string) (*UnhandledResult, error) {
	result := &UnhandledResult{Fallbacks: make([]Fallback, 0)}
	var pending pendingBucket

	for i, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, directiveIndent+unhandledDirective):
			code, err := matchDirective(unhandledPattern, unhandledDirective, i+1, line)
			if err != nil {
				return nil, err
			}
			pending = append(pending, code)

		case strings.HasPrefix(line, directiveIndent+endUnhandledDirective):
			target, err := matchDirective(endUnhandledPattern, endUnhandledDirective, i+1, line)
			if err != nil {
				return nil, err
			}
			result.Fallbacks = pending.flush(target, result.Fallbacks)
			result.Blocks++
			pending = nil
		}
	}

	result.Dangling = []string(pending)
	return result, nil
}

func matchDirective(pattern *regexp.Regexp, directive string, lineNo int, line string) (string, error) {
	m := pattern.FindStringSubmatch(line)
	if m == nil {
		return "", &GrammarMismatchError{Line: lineNo, Directive: directive, Text: line}
	}
	return countryCode(m[1], m[2]), nil
}
