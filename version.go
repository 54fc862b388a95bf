// Package mdpane carries the release identity of the mdpane editor.
package mdpane

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Set at build time with -ldflags "-X github.com/iw2rmb/mdpane.Commit=...".
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Version returns the release in SemVer form, without the leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag of the release.
func VersionTag() string {
	return "v" + Version()
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func Build() BuildInfo {
	return BuildInfo{Version: VersionTag(), Commit: Commit, Date: BuildDate}
}

// String formats the build as "v0.1.0", adding the commit and date when
// they were injected.
func (b BuildInfo) String() string {
	if b.Commit == "unknown" || b.Commit == "" {
		return b.Version
	}
	return fmt.Sprintf("%s (%s) built %s", b.Version, b.Commit, b.Date)
}

// IsSemver reports whether v is a SemVer 2.0.0 version without a v prefix.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
