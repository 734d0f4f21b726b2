package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/npaths/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/npaths/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/npaths/internal/version.Date={{.Date}}
)

// String renders the build information on one line
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
