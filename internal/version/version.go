package version

import "fmt"

// Set at build time with -ldflags "-X headgate/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

// GetVersion describes the build for the binary called program.
func GetVersion(program string) string {
	if program == "" {
		program = "headgate"
	}
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", program, Version, Commit, BuildDate)
}

func GetShortVersion() string {
	return Version
}
