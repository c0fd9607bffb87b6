// Package pkg carries build metadata for the biohub CLI.
package pkg

var (
	// Version is set during build by ldflags.
	Version = "v0.1.0"

	// Build is a timestamp set during build by ldflags.
	Build = "n/a"
)
