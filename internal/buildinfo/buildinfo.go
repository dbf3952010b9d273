// Package buildinfo exposes version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/easypost-cli/internal/buildinfo.Version=0.1.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "0.0.1"
	Commit  = "N/A"
	Date    = "N/A"
)

// PrintBanner writes the one-line start-up banner.
func PrintBanner(w io.Writer) {
	fmt.Fprintf(w, "EasyPost CLI v%s\n", Version)
}

// PrintBuildData writes version, commit and build date, one per line.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
	fmt.Fprintf(w, "Build date: %s\n", Date)
}
