//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/sapling/internal/gui"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		preset      string
		rules       string
		axiom       string
		iterations  int
		seed        int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&preset, "preset", "", "plant preset to load, fuzzy matched by name")
	flag.StringVar(&rules, "rules", "", `custom rule set, e.g. "X=F[+X][-X]FX; F=FF" (overrides -preset)`)
	flag.StringVar(&axiom, "axiom", "X", "axiom used together with -rules")
	flag.IntVar(&iterations, "iterations", 0, "rewrite depth (0 = preset default)")
	flag.Int64Var(&seed, "seed", 0, "growth seed for reproducible plants (0 = random)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Sapling %s (%s) %s\n", version, commit, date)
		return
	}

	app := gui.NewApp(gui.AppConfig{
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		PresetQuery: preset,
		RulesSpec:   rules,
		Axiom:       axiom,
		Iterations:  iterations,
		Seed:        seed,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
