// Package config handles export-profile configuration loading and
// validation.
//
// Configuration is loaded from a YAML file and validated using struct
// tags. It covers only deployment-fixed serializer settings and local
// identifier-scheme registrations; the codec itself never reads files
// at conversion time.
package config
