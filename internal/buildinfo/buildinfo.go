// Package buildinfo carries version stamps set with
// -ldflags "-X inkstatus/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Long includes the build date when it is known.
func Long() string {
	s := Short()
	if Date != "" && Date != "unknown" {
		s += " built " + Date
	}
	return s
}
