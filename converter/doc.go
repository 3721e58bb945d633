// Package converter is the main entry point for resource-to-kernel
// canonicalization.
//
// The converter turns a fully hydrated resource aggregate into the
// canonical Metadata Kernel tree consumed by both serializers in the
// formatter package. It is pure: no I/O, no mutation of the input, and
// deterministic output for identical input.
//
// # Usage
//
//	doc, err := converter.Canonicalize(res, converter.Options{})
//	if err != nil {
//	    // precondition violation in the aggregate; not retryable
//	}
//	b := formatter.NewBuilder(formatter.Settings{})
//	xmlBytes := b.BuildXML(doc)
//	jsonBytes, err := b.BuildJSON(doc)
//
// # Architecture
//
// The package is organized into specialized files:
//   - converter.go: Converter struct and the Canonicalize entry point
//   - party.go: creator/contributor dispatch and name building
//   - fields.go: dates, geolocations, funding, rights, subjects, ...
//   - warnings.go: aggregation of non-fatal omissions
//
// # Thread safety
//
// Converter instances are not thread-safe; each call to Canonicalize
// should use its own. Distinct resources can be canonicalized
// concurrently with no locking since there is no shared mutable state.
package converter
