// Package commands implements the motion command tree.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/motion"
	"github.com/phanxgames/motion/internal/scenario"
)

var debug bool

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "motion",
		Short:        "Play and inspect tween scenarios",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log frame stats and tween lifecycle to stderr")

	root.AddCommand(simulateCmd(), playCmd(), easingsCmd())
	return root
}

// loadProgram reads a scenario file and instantiates it on a new scene.
func loadProgram(cmd *cobra.Command, path string) (*scenario.Scenario, *scenario.Program, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, nil, err
	}
	scene := motion.NewScene()
	if debug {
		scene.SetDebugMode(true)
		scene.SetDebugOutput(cmd.ErrOrStderr())
	}
	prog, err := sc.Build(scene)
	if err != nil {
		return nil, nil, err
	}
	return sc, prog, nil
}
