// searchpresets is a CLI tool that extracts search engine presets by country
// from the prepopulated engines source file.
package main

import (
	"github.com/hightemp/searchpresets/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}
