// Package version exposes the build identity stamped into the lexsearch
// binary at link time.
package version

import (
	"fmt"
	"runtime"
)

// Stamped via -ldflags "-X github.com/lexafrica/lexsearch/pkg/version.Version=...".
// Local builds keep the placeholders.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info describes one built binary, including the platform it runs on.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Current combines the linker stamp with runtime platform details.
func Current() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// String renders the one-line form shown by `lexsearch version`.
func (i Info) String() string {
	return fmt.Sprintf("lexsearch %s (commit %s, built %s, %s %s/%s)",
		i.Version, i.Commit, i.Date, i.GoVersion, i.OS, i.Arch)
}
