// Package version reports the build version of the binary.
package version

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Set at build time:
//
//	go build -ldflags "-X helpdesk/internal/shared/version.Version=1.2.0 -X helpdesk/internal/shared/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "dev"
	Commit  = ""
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2" -> "v1.2.0". Non-semver input such
// as "dev" is returned trimmed but otherwise unchanged.
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	candidate := version
	if !strings.HasPrefix(candidate, "v") {
		candidate = "v" + candidate
	}
	if !semver.IsValid(candidate) {
		return version
	}
	return semver.Canonical(candidate)
}

// IsRelease reports whether version is a semver release without a
// prerelease suffix.
func IsRelease(version string) bool {
	v := Normalize(version)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}

// String is the version line printed by --version.
func String() string {
	v := Normalize(Version)
	if Commit == "" {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, Commit)
}
