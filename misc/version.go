// Package misc keeps build identity helpers in one place so they could be
// used from any other package without creating import cycles.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "img2pdf"

// GetAppName returns short program name used for logs, temporary files and
// CLI presentation.
func GetAppName() string {
	return appName
}

var buildInfo = sync.OnceValue(func() *debug.BuildInfo {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi
	}
	return nil
})

// GetVersion returns module version recorded in the binary build info.
func GetVersion() string {
	bi := buildInfo()
	if bi == nil || bi.Main.Version == "" {
		return "(devel)"
	}
	return bi.Main.Version
}

// GetGitHash returns VCS revision recorded in the binary build info.
func GetGitHash() string {
	bi := buildInfo()
	if bi == nil {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return "unknown"
}
