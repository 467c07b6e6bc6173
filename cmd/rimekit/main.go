package main

import (
	"os"
	"runtime"

	"github.com/qianyan/rimekit/internal/build"
	"github.com/qianyan/rimekit/internal/cli/cmd"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
