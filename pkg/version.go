// Package pantry holds build information for the pantry application.
package pantry

var (
	// Version of the application. Set by ldflags at build time.
	Version = "v0.1.0"
	// Build timestamp. Set by ldflags at build time.
	Build = "n/a"
)
