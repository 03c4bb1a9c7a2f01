// Package countries provides ISO-3166 country code validation and names.
package countries

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var regionNamer = display.English.Regions()

// region parses a two-letter code into a country region.
func region(code string) (language.Region, bool) {
	if len(code) != 2 {
		return language.Region{}, false
	}
	r, err := language.ParseRegion(strings.ToUpper(code))
	if err != nil {
		return language.Region{}, false
	}
	return r, r.IsCountry()
}

// GetName returns the English country name for the given ISO-3166 alpha-2 code.
// Returns empty string if not found.
func GetName(code string) string {
	r, ok := region(code)
	if !ok {
		return ""
	}
	return regionNamer.Name(r)
}

// IsValid checks if the given code is a valid ISO-3166 alpha-2 country code.
func IsValid(code string) bool {
	_, ok := region(code)
	return ok
}

// Unknown returns the sorted, de-duplicated keys and values of mapping that
// are not valid country codes.
func Unknown(mapping map[string]string) []string {
	seen := make(map[string]bool)
	var result []string
	add := func(code string) {
		if seen[code] || IsValid(code) {
			return
		}
		seen[code] = true
		result = append(result, code)
	}
	for code, target := range mapping {
		add(code)
		add(target)
	}
	sort.Strings(result)
	return result
}
