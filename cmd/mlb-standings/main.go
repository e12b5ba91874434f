// Command mlb-standings exports ESPN's MLB head-to-head standings grid as CSV.
package main

import "github.com/pfrederiksen/mlb-standings/internal/cli"

// version is set at build time via ldflags
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute()
}
