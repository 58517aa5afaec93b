// Package version exposes build metadata for the activities service.
package version

import "runtime"

// Service identifies this binary in version output and deploy dashboards.
const Service = "mergington-activities"

// Build information, injected via ldflags at build time:
//
//	-X github.com/mergington/activities/internal/version.Version=v1.2.3
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info is the payload served by the /version endpoint.
type Info struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Service:   Service,
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}
