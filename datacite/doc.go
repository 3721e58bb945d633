// Package datacite defines the canonical Metadata Kernel document types.
//
// The DataCite Metadata Schema is an externally governed standard for
// describing research datasets. This package contains the format-agnostic
// canonical tree produced by the converter and consumed by both the XML
// and the JSON formatter:
//
//   - Resource: the root document with all kernel properties
//   - Party: creators and contributors (personal or organizational)
//   - Date, GeoLocation, FundingReference, ... : repeatable properties
//
// All types carry JSON struct tags matching the kernel's JSON attribute
// shape. XML placement (attribute vs element, fixed ordering) is handled
// by the formatter package, not by struct tags.
package datacite
