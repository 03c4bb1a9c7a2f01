// Package output handles output formatting.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hightemp/searchpresets/internal/countries"
	"github.com/hightemp/searchpresets/internal/presets"
)

// Document is the JSON document consumed by the client.
type Document struct {
	EngineLists    []presets.EngineList `json:"engineLists"`
	CountryMapping map[string]string    `json:"countryMapping"`
}

// NewDocument builds a document from an extraction result.
func NewDocument(r *presets.Result) *Document {
	doc := &Document{
		EngineLists:    r.EngineLists,
		CountryMapping: r.CountryMapping,
	}
	// Emit [] and {} rather than null.
	if doc.EngineLists == nil {
		doc.EngineLists = []presets.EngineList{}
	}
	if doc.CountryMapping == nil {
		doc.CountryMapping = map[string]string{}
	}
	return doc
}

// FormatJSON encodes the document. An empty indent gives compact output.
// Map keys are sorted by encoding/json, so equal documents encode to equal bytes.
func (d *Document) FormatJSON(indent string) ([]byte, error) {
	return encodeJSON(d, indent)
}

func encodeJSON(v interface{}, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Engine identifiers come from C source and may contain '&'.
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MappingRow is one country mapping entry with display names.
type MappingRow struct {
	Code       string `json:"code"`
	Name       string `json:"name,omitempty"`
	Target     string `json:"target"`
	TargetName string `json:"target_name,omitempty"`
}

// MappingRows returns the mapping as rows sorted by country code.
func MappingRows(mapping map[string]string) []MappingRow {
	codes := make([]string, 0, len(mapping))
	for code := range mapping {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rows := make([]MappingRow, 0, len(codes))
	for _, code := range codes {
		target := mapping[code]
		rows = append(rows, MappingRow{
			Code:       code,
			Name:       countries.GetName(code),
			Target:     target,
			TargetName: countries.GetName(target),
		})
	}
	return rows
}

// FormatText formats a row as tab-separated text.
func (r MappingRow) FormatText() string {
	return fmt.Sprintf("%s\t%s\t%s\t%s",
		r.Code,
		orDash(r.Name),
		r.Target,
		orDash(r.TargetName),
	)
}

// FormatMappingText formats rows one per line.
func FormatMappingText(rows []MappingRow) string {
	var lines []string
	for _, r := range rows {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatMappingJSON formats the bare mapping object.
func FormatMappingJSON(mapping map[string]string, indent string) ([]byte, error) {
	if mapping == nil {
		mapping = map[string]string{}
	}
	return encodeJSON(mapping, indent)
}

// ResolveResult is the outcome of resolving one country code.
type ResolveResult struct {
	Country  string   `json:"country"`
	Resolved string   `json:"resolved"`
	List     string   `json:"list"`
	Engines  []string `json:"engines"`
}

// FormatText prints the resolution header followed by one engine per line.
func (r *ResolveResult) FormatText() string {
	lines := []string{fmt.Sprintf("%s\t%s\t%s", r.Country, r.Resolved, r.List)}
	lines = append(lines, r.Engines...)
	return strings.Join(lines, "\n")
}

// FormatJSON formats the result as JSON.
func (r *ResolveResult) FormatJSON(indent string) ([]byte, error) {
	return encodeJSON(r, indent)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
