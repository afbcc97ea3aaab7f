// Package misc keeps program identity used in logs, reports and file names.
package misc

import (
	"runtime/debug"
)

// set by linker flags
var (
	appName = "aippt"
	version = "0.0.0-dev"
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns the hash set at build time or, when missing, the VCS
// revision recorded by the go tool.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) > 0 {
				return s.Value
			}
		}
	}
	return "unknown"
}
