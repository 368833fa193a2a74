package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build stamps. Release builds set them via ldflags:
//
//	go build -ldflags "-X github.com/teranos/i18ntypes/version.Version=v0.3.0 \
//	  -X github.com/teranos/i18ntypes/version.CommitHash=$(git rev-parse HEAD)"
//
// Binaries installed with `go install` carry no ldflags, so Get falls back to
// the module version and VCS settings recorded by the Go toolchain.
var (
	CommitHash = "dev"
	BuildTime  = "unknown"
	Version    = "dev"
)

const unset = "dev"

// Info describes the running i18ntypes binary
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Modified   bool   `json:"modified,omitempty"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the build stamps, filled in from the embedded build info where
// ldflags left them unset.
func Get() Info {
	info := Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = fromBuildInfo(bi, info)
	}
	return info
}

func fromBuildInfo(bi *debug.BuildInfo, info Info) Info {
	if info.Version == unset && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}

	stamped := info.CommitHash != unset
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if !stamped {
				info.CommitHash = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			if !stamped {
				info.Modified = s.Value == "true"
			}
		}
	}
	return info
}

// String renders the one-line form printed by `i18ntypes version`
func (i Info) String() string {
	commit := i.Short()
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("i18ntypes %s (commit %s, built %s)", i.Version, commit, i.BuildTime)
}

// Short returns the abbreviated commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
