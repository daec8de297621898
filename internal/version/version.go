// Package version carries build metadata injected with -ldflags.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String is the multi-line version banner printed by "artisan version".
func String() string {
	return fmt.Sprintf("artisan version %s\nCommit: %s\nBuilt: %s\n", Version, CommitHash, BuildDate)
}

// Short is the one-word version used in the CLI's --version output.
func Short() string {
	if CommitHash == "unknown" || CommitHash == "" {
		return Version
	}
	c := CommitHash
	if len(c) > 7 {
		c = c[:7]
	}
	return Version + " (" + c + ")"
}
