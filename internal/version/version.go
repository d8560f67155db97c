package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/codepack/codepack/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/codepack/codepack/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/codepack/codepack/internal/version.Date={{.Date}}
)
