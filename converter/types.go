package converter

// Options contains all configuration needed for canonicalization.
// This struct is data-source agnostic and has no dependencies on
// config files.
type Options struct {
	// IdentifierSchemes maps additional identifier scheme names to
	// their resolver URIs. Consulted only when a scheme is not in the
	// built-in kernel table; built-in entries always win.
	IdentifierSchemes map[string]string
}
