package converter

import (
	"fmt"
	"log"
	"strings"
)

// Warning type constants
const (
	WarningUnknownScheme  = "unknown_identifier_scheme"
	WarningEmptyDate      = "empty_date_value"
	WarningShapelessGeo   = "geolocation_without_shape"
	WarningFallbackName   = "person_without_any_name"
	WarningYearMissing    = "no_publication_year"
	WarningFunderIDNoType = "funder_identifier_without_type"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects non-fatal omissions during canonicalization
// and outputs consolidated summaries instead of one log line per field
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example label
func (w *WarningAggregator) Add(warningType, example string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, example)
	}
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(doi string) {
	if len(w.warnings) == 0 {
		return
	}
	if doi == "" {
		doi = "(unregistered)"
	}

	for warningType, info := range w.warnings {
		log.Printf("%s", w.formatWarningMessage(warningType, doi, info))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, doi string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningUnknownScheme:
		description = "name identifiers with an unknown scheme"
		action = "Emitting the identifier with an empty scheme URI"
	case WarningEmptyDate:
		description = "single dates with an empty value"
		action = "Omitting the date entirely"
	case WarningShapelessGeo:
		description = "geolocations without a complete point, box or polygon"
		action = "Omitting the geolocation entry"
	case WarningFallbackName:
		description = "persons with neither family nor given name"
		action = "Emitting the fallback name 'Unknown'"
	case WarningYearMissing:
		description = "no publication year"
		action = "Emitting the document without publicationYear"
	case WarningFunderIDNoType:
		description = "funder identifiers without an identifier type"
		action = "Emitting the identifier group with an empty type"
	default:
		description = "unknown issue"
		action = "Emitting the document with fallback behavior"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Resource %s has %s (%d occurrences). %s. Examples: %s",
		doi, description, info.count, action, examplesStr)
}
