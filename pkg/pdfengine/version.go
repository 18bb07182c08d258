package pdfengine

// Version is the semantic version of this module, populated at build time
// via ldflags. In development it defaults to v0.0.0-dev.
var Version = "v0.0.0-dev"

// WrapperVersion returns the module version string.
func WrapperVersion() string {
	return Version
}
