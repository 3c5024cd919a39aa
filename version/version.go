package version

import "runtime/debug"

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string, falling back to the module
// version recorded by "go install"
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// GetCommit returns the short commit hash from ldflags or VCS build info
func GetCommit() string {
	if GitCommit != "unknown" {
		return GitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				if len(setting.Value) > 7 {
					return setting.Value[:7]
				}
				return setting.Value
			}
		}
	}
	return GitCommit
}

// GetFullVersion returns a full version string with commit and date
func GetFullVersion() string {
	v := GetVersion()
	if v == "dev" {
		return v
	}
	return v + " (" + GetCommit() + ")"
}
