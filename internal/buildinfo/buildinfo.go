package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/sandeepkv93/focusblock/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("focusblock %s (commit=%s, date=%s)", Version, Commit, Date)
}
