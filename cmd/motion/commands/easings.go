package commands

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phanxgames/motion"
)

// easings [name...]: list easing curves with sampled values.
func easingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "easings [name...]",
		Short: "List easing curves usable in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := motion.EasingNames()
			if len(args) > 0 {
				for _, a := range args {
					if !slices.Contains(names, a) {
						return fmt.Errorf("unknown easing %q", a)
					}
				}
				names = args
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "name\t0.25\t0.50\t0.75")
			for _, name := range names {
				e, _ := motion.EasingByName(name)
				fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\n", name, e(0.25), e(0.5), e(0.75))
			}
			return w.Flush()
		},
	}
	return cmd
}
