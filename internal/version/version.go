// Package version holds build-time version information, overridable via
// -ldflags.
package version

var (
	// Version is the semantic version of the build.
	Version = "0.1.0"

	// Commit is the git commit hash of the build.
	Commit = ""

	// Date is the build date.
	Date = ""
)
