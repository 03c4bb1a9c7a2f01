package presets

import "regexp"

var declareCountryPattern = regexp.MustCompile(`DECLARE_COUNTRY\((.+?), (.+?)\)`)

// ExtractCountryDeclarations returns the code of every DECLARE_COUNTRY(A, B)
// occurrence in text, in order of appearance. Codes may repeat.
func ExtractCountryDeclarations(text string) []string {
	codes := make([]string, 0)
	for _, m := range declareCountryPattern.FindAllStringSubmatch(text, -1) {
		codes = append(codes, countryCode(m[1], m[2]))
	}
	return codes
}

// countryCode joins the two captured fragments of a country macro.
// No case folding or length check is applied.
func countryCode(a, b string) string {
	return a + b
}
