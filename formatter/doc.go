// Package formatter serializes canonical kernel documents.
//
// This package is organized into:
// - builder.go: Builder construction and serializer settings
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
//
// XML serialization is done manually for precise control over the
// kernel's fixed element ordering and attribute placement; JSON
// serialization follows the struct tags on the canonical types.
package formatter
