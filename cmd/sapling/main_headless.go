//go:build !cgo
// +build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var showVersion bool

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("Sapling %s (%s) %s\n", version, commit, date)
		return
	}

	fmt.Fprintln(os.Stderr, "this binary was built without cgo; the sapling window needs the raylib (cgo) build")
	os.Exit(1)
}
