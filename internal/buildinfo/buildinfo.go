package buildinfo

import "fmt"

// Set at link time with -ldflags "-X github.com/vipcxj/intervals/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("intervals %s (commit=%s, date=%s)", Version, Commit, Date)
}
