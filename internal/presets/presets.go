// Package presets extracts per-locale search engine lists and the country
// fallback mapping from the prepopulated engines source file.
package presets

import (
	"go.uber.org/zap"
)

// CountryMapping maps a country code to the country code whose engine list
// it uses.
type CountryMapping map[string]string

// Options configures Extract.
type Options struct {
	// Logger receives debug counts and warnings. Nil disables logging.
	Logger *zap.Logger
}

// Result holds everything extracted from one input text.
type Result struct {
	EngineLists    []EngineList
	CountryMapping CountryMapping

	// Declared is the number of DECLARE_COUNTRY matches.
	Declared int
	// Fallbacks lists the unhandled-country entries in source order.
	Fallbacks []Fallback
	// Dangling holds unhandled codes that were never terminated.
	Dangling []string
}

// Extract runs the three extraction passes over text and merges their
// mapping contributions. Fallback entries override identity entries.
func Extract(text string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	unhandled, err := AggregateUnhandled(text)
	if err != nil {
		return nil, err
	}

	lists := ExtractEngineLists(text)
	declared := ExtractCountryDeclarations(text)

	mapping := make(CountryMapping, len(declared)+len(unhandled.Fallbacks))
	for _, code := range declared {
		mapping[code] = code
	}
	for _, fb := range unhandled.Fallbacks {
		mapping[fb.Code] = fb.Target
	}

	logger.Debug("Extracted presets",
		zap.Int("engine_lists", len(lists)),
		zap.Int("declared_countries", len(declared)),
		zap.Int("unhandled_blocks", unhandled.Blocks),
		zap.Int("fallbacks", len(unhandled.Fallbacks)),
		zap.Int("mapping_size", len(mapping)))

	if len(unhandled.Dangling) > 0 {
		logger.Warn("Unhandled countries without terminator were discarded",
			zap.Strings("codes", unhandled.Dangling))
	}

	return &Result{
		EngineLists:    lists,
		CountryMapping: mapping,
		Declared:       len(declared),
		Fallbacks:      unhandled.Fallbacks,
		Dangling:       unhandled.Dangling,
	}, nil
}

// EngineList returns the first list with the given code, or nil.
func (r *Result) EngineList(code string) *EngineList {
	for i := range r.EngineLists {
		if r.EngineLists[i].Code == code {
			return &r.EngineLists[i]
		}
	}
	return nil
}

// Resolve picks the engine list a client would show for countryCode.
// Unmapped countries resolve to defaultCode; a resolved code without its own
// list falls back to the defaultCode list. ok is false when neither exists.
func (r *Result) Resolve(countryCode, defaultCode string) (resolved string, list *EngineList, ok bool) {
	resolved, found := r.CountryMapping[countryCode]
	if !found {
		resolved = defaultCode
	}

	if match := r.EngineList(resolved); match != nil {
		return resolved, match, true
	}
	if match := r.EngineList(defaultCode); match != nil {
		return resolved, match, true
	}
	return resolved, nil, false
}
