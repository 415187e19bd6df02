package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X .../internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X .../internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X .../internal/version.Date={{.Date}}
)
