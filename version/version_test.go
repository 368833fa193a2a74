package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	info := Info{CommitHash: "0123456789abcdef", BuildTime: "2026-10-01T12:00:00Z", Version: "v0.3.0"}
	assert.Equal(t, "i18ntypes v0.3.0 (commit 0123456, built 2026-10-01T12:00:00Z)", info.String())
	assert.Equal(t, "0123456", info.Short())

	info.Modified = true
	assert.Equal(t, "i18ntypes v0.3.0 (commit 0123456-dirty, built 2026-10-01T12:00:00Z)", info.String())
}

func TestShortKeepsShortHashes(t *testing.T) {
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func installed() *debug.BuildInfo {
	return &debug.BuildInfo{
		GoVersion: "go1.24.6",
		Main:      debug.Module{Path: "github.com/teranos/i18ntypes", Version: "v0.4.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
			{Key: "vcs.time", Value: "2026-09-30T08:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
}

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name  string
		bi    *debug.BuildInfo
		stamp Info
		want  Info
	}{
		{
			name:  "go install fills unset stamps",
			bi:    installed(),
			stamp: Info{Version: "dev", CommitHash: "dev", BuildTime: "unknown"},
			want: Info{
				Version:    "v0.4.1",
				CommitHash: "fedcba9876543210",
				BuildTime:  "2026-09-30T08:00:00Z",
				Modified:   true,
				GoVersion:  "go1.24.6",
			},
		},
		{
			name:  "ldflags win over build info",
			bi:    installed(),
			stamp: Info{Version: "v0.3.0", CommitHash: "0123456789abcdef", BuildTime: "2026-10-01T12:00:00Z"},
			want: Info{
				Version:    "v0.3.0",
				CommitHash: "0123456789abcdef",
				BuildTime:  "2026-10-01T12:00:00Z",
				GoVersion:  "go1.24.6",
			},
		},
		{
			name:  "devel build without vcs",
			bi:    &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			stamp: Info{Version: "dev", CommitHash: "dev", BuildTime: "unknown", GoVersion: "go1.24.0"},
			want:  Info{Version: "dev", CommitHash: "dev", BuildTime: "unknown", GoVersion: "go1.24.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fromBuildInfo(tt.bi, tt.stamp))
		})
	}
}
