package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/routemotion/internal/navigation"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve FROM TO",
		Short: "Show the transition used between two routes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := a.cfg.Resolver()
			if err != nil {
				return err
			}
			table, err := a.cfg.Table()
			if err != nil {
				return err
			}

			from, to := navigation.Route(args[0]), navigation.Route(args[1])
			c := table.Config(resolver.Resolve(from, to))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "variant: %s\n", c.Variant)
			fmt.Fprintf(out, "from %s: %s -> %s, opacity %.2f -> %.2f\n",
				from, c.InitialFrom, c.FinalFrom, c.FromOpacity.Start, c.FromOpacity.End)
			fmt.Fprintf(out, "to %s: %s -> %s, opacity %.2f -> %.2f\n",
				to, c.InitialTo, c.FinalTo, c.ToOpacity.Start, c.ToOpacity.End)
			fmt.Fprintf(out, "model: %s\n", c.Model)
			return nil
		},
	}
}
