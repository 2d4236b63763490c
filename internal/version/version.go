// Package version reports build version information for goodmood
package version

import "runtime/debug"

// Version is overridden at build time via -ldflags.
var Version = "dev"

// String returns the release version, or a vcs-derived dev version when the
// binary was built straight from the tree.
func String() string {
	if Version != "dev" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			revision := setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
			return "dev-" + revision
		}
	}
	return Version
}
