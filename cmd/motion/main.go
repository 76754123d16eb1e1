// Command motion plays and inspects YAML animation scenarios.
package main

import (
	"os"

	"github.com/phanxgames/motion/cmd/motion/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
