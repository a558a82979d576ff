// Package version holds build information injected at link time.
package version

import "fmt"

// Set with -ldflags "-X github.com/toozej/cheatsheet/pkg/version.Version=..." and friends.
var (
	Version = "local"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = "unknown"
)

// Info is a snapshot of the build information.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		BuiltBy: BuiltBy,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s by %s)", i.Version, i.Commit, i.Date, i.BuiltBy)
}
