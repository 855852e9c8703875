package version

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withBuildInfo swaps the build information for one test.
func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := Version, GitCommit, BuildDate
	SetBuildInfo(version, commit, date)
	t.Cleanup(func() { SetBuildInfo(oldVersion, oldCommit, oldDate) })
}

func TestDefaultVersionIsValid(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestGetInfo(t *testing.T) {
	withBuildInfo(t, "1.2.3+45.abc", "abcdef0123", "2025-01-02")

	info, err := GetInfo()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3+45.abc", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, uint64(2), info.SemVer.Minor())
}

func TestGetInfo_Invalid(t *testing.T) {
	withBuildInfo(t, "not-a-version", "unknown", "unknown")

	_, err := GetInfo()
	assert.ErrorContains(t, err, "invalid semantic version 'not-a-version'")
	assert.Error(t, Validate())
}

func TestShort(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		date     string
		expected string
	}{
		{"development", "0.1.0", "unknown", "unknown", "cmdshell v0.1.0"},
		{"release", "1.0.0", "abcdef0123456", "2025-01-02", "cmdshell v1.0.0, commit abcdef0, built 2025-01-02"},
		{"short commit", "1.0.0", "abc", "", "cmdshell v1.0.0, commit abc"},
		{"invalid", "x", "unknown", "unknown", "cmdshell vx (invalid version)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, tt.commit, tt.date)
			assert.Equal(t, tt.expected, Short())
		})
	}
}

func TestDetailed(t *testing.T) {
	withBuildInfo(t, "1.0.0+7.sha", "abc", "2025-01-02")

	lines := strings.Split(Detailed(), "\n")
	assert.Equal(t, "cmdshell v1.0.0+7.sha", lines[0])
	assert.Contains(t, lines, "Build Metadata: 7.sha")
	assert.Contains(t, lines, "Git Commit: abc")
}

func TestIsPrereleaseAndDevelopment(t *testing.T) {
	withBuildInfo(t, "1.0.0-rc.1", "abc", "2025-01-02")
	assert.True(t, IsPrerelease())
	assert.False(t, IsDevelopment())

	SetBuildInfo("1.0.0", "unknown", "2025-01-02")
	assert.False(t, IsPrerelease())
	assert.True(t, IsDevelopment())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		v1, v2   string
		expected int
	}{
		{"1.0.0", "1.0.1", -1},
		{"1.0.0", "1.0.0", 0},
		{"2.0.0", "1.9.9", 1},
		{"1.0.0-rc.1", "1.0.0", -1},
	}
	for _, tt := range tests {
		got, err := Compare(tt.v1, tt.v2)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "%s vs %s", tt.v1, tt.v2)
	}

	_, err := Compare("bad", "1.0.0")
	assert.Error(t, err)
}

func TestSatisfies(t *testing.T) {
	withBuildInfo(t, "0.3.1", "unknown", "unknown")

	ok, err := Satisfies(">= 0.3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Satisfies("^1.0")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Satisfies("not a constraint")
	assert.Error(t, err)
}

func TestBuildTime(t *testing.T) {
	withBuildInfo(t, "1.0.0", "abc", "2025-01-02")
	bt, err := BuildTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), bt)

	SetBuildInfo("1.0.0", "abc", "unknown")
	_, err = BuildTime()
	assert.Error(t, err)

	SetBuildInfo("1.0.0", "abc", "yesterday")
	_, err = BuildTime()
	assert.ErrorContains(t, err, "unable to parse")
}
