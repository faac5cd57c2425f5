package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
)

// Linker provided build metadata.
var (
	// Version is the API version reported by / and the version command.
	Version = "1.0.0"
	Branch  = ""
	// Revision and BuiltAt fall back to the VCS stamp of the toolchain.
	Revision = ""
	BuiltAt  = ""
)

const unknown = "unknown"

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Branch    string `json:"branch,omitempty"`
	Revision  string `json:"revision"`
	BuiltAt   string `json:"built_at"`
	GoVersion string `json:"go_version"`
	Modified  bool   `json:"modified,omitempty"`
}

// GetVersionInfo merges the linker values with the embedded build info.
func GetVersionInfo() Info {
	info := Info{
		Version:   Version,
		Branch:    Branch,
		Revision:  Revision,
		BuiltAt:   BuiltAt,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Revision == "" {
					info.Revision = shortRevision(s.Value)
				}
			case "vcs.time":
				if info.BuiltAt == "" {
					info.BuiltAt = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if info.Revision == "" {
		info.Revision = unknown
	}
	if info.BuiltAt == "" {
		info.BuiltAt = unknown
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

func (i Info) String() string {
	rev := i.Revision
	if i.Modified {
		rev += "-dirty"
	}
	if i.Branch != "" {
		rev = i.Branch + "@" + rev
	}
	return fmt.Sprintf("microservicio %s (%s, built %s, %s)", i.Version, rev, i.BuiltAt, i.GoVersion)
}

// JSON returns the indented JSON form.
func (i Info) JSON() (string, error) {
	b, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
