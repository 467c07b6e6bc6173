// Package build carries build-time identification injected via ldflags.
package build

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}
