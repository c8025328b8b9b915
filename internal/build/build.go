// Package build holds build-time information set through linker flags.
package build

// Version is the release version, "dev" for local builds.
var Version = "dev"

// Commit is the git revision the binary was built from.
var Commit = "none"

// String formats the version line printed by the CLI.
func String() string {
	return Version + " (" + Commit + ")"
}
