package main

import (
	"os"

	"github.com/openlayout/gridarb/internal/cli"
	"github.com/openlayout/gridarb/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
