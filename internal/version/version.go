// Package version carries the cmdshell build version, validated as a semantic
// version. Build information is injected at link time:
//
//	go build -ldflags "-X cmdshell/internal/version.Version=1.2.0 -X cmdshell/internal/version.GitCommit=$(git rev-parse HEAD)"
package version

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info describes the running build.
type Info struct {
	Version   string          `json:"version"`
	GitCommit string          `json:"gitCommit"`
	BuildDate string          `json:"buildDate"`
	GoVersion string          `json:"goVersion"`
	Platform  string          `json:"platform"`
	SemVer    *semver.Version `json:"-"`
}

// GetInfo returns the build information, failing when Version is not a
// semantic version.
func GetInfo() (*Info, error) {
	sv, err := parse()
	if err != nil {
		return nil, err
	}
	return &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		SemVer:    sv,
	}, nil
}

// Short returns "cmdshell v<version>" with the short commit and build date
// appended when known.
func Short() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("cmdshell v%s (invalid version)", Version)
	}

	parts := []string{"cmdshell v" + info.Version}
	if known(info.GitCommit) {
		commit := info.GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		parts = append(parts, "commit "+commit)
	}
	if known(info.BuildDate) {
		parts = append(parts, "built "+info.BuildDate)
	}
	return strings.Join(parts, ", ")
}

// Detailed returns one "Key: value" line per build attribute.
func Detailed() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("cmdshell v%s (error: %v)", Version, err)
	}

	lines := []string{
		"cmdshell v" + info.Version,
		"Git Commit: " + info.GitCommit,
		"Build Date: " + info.BuildDate,
	}
	if meta := info.SemVer.Metadata(); meta != "" {
		lines = append(lines, "Build Metadata: "+meta)
	}
	lines = append(lines,
		"Go Version: "+info.GoVersion,
		"Platform: "+info.Platform,
	)
	return strings.Join(lines, "\n")
}

// Validate reports whether Version is a semantic version.
func Validate() error {
	_, err := parse()
	return err
}

// IsPrerelease returns true if the current version is a prerelease.
func IsPrerelease() bool {
	sv, err := parse()
	return err == nil && sv.Prerelease() != ""
}

// IsDevelopment returns true when no build information was injected.
func IsDevelopment() bool {
	return !known(GitCommit) || !known(BuildDate)
}

// Compare returns -1, 0 or 1 as v1 is older than, equal to or newer than v2.
func Compare(v1, v2 string) (int, error) {
	sv1, err := semver.NewVersion(v1)
	if err != nil {
		return 0, fmt.Errorf("invalid version '%s': %w", v1, err)
	}
	sv2, err := semver.NewVersion(v2)
	if err != nil {
		return 0, fmt.Errorf("invalid version '%s': %w", v2, err)
	}
	return sv1.Compare(sv2), nil
}

// Satisfies reports whether the current version meets constraint, such as ">= 0.1".
func Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid constraint '%s': %w", constraint, err)
	}
	sv, err := parse()
	if err != nil {
		return false, err
	}
	return c.Check(sv), nil
}

// BuildTime parses BuildDate.
func BuildTime() (time.Time, error) {
	if !known(BuildDate) {
		return time.Time{}, fmt.Errorf("build date not available")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, BuildDate); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse build date '%s'", BuildDate)
}

// SetBuildInfo replaces the build information. Tests use it.
func SetBuildInfo(version, gitCommit, buildDate string) {
	Version = version
	GitCommit = gitCommit
	BuildDate = buildDate
}

func parse() (*semver.Version, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}
	return sv, nil
}

func known(s string) bool {
	return s != "" && s != "unknown"
}
