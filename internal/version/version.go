// Package version holds the build version, overridden with
// -ldflags "-X github.com/katalvlaran/roundpair/internal/version.Version=...".
package version

// Version is the roundpair release.
var Version = "dev"
