// Package main provides the bindcheck CLI.
//
// bindcheck validates jsonbind overlay files before they reach a build:
// it parses each YAML document, runs structural validation (unknown naming
// strategies, duplicate type entries, empty wire names), and reports
// diagnostics. Member-level checks against descriptors happen at mapper
// build time; bindcheck covers everything that can be checked from the
// file alone.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"jsonbind/overlay"
)

func main() {
	quiet := pflag.BoolP("quiet", "q", false, "suppress warnings, report errors only")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: bindcheck [flags] <overlay.yaml> [...]\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	paths := pflag.Args()
	if len(paths) == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	failed := false

	for _, path := range paths {
		f, err := overlay.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)

			failed = true

			continue
		}

		diags := overlay.ValidateStructure(f)

		for _, d := range diags.Errors {
			fmt.Fprintf(os.Stderr, "%s: error: %s\n", path, d)
		}

		if !*quiet {
			for _, d := range diags.Warnings {
				fmt.Fprintf(os.Stderr, "%s: warning: %s\n", path, d)
			}
		}

		if diags.HasErrors() {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
