// Package main is the single-binary entrypoint for Resolve.
package main

import "github.com/resolvehq/resolve/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
