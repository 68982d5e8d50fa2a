package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/routemotion/internal/navigation"
	"github.com/ivlev/routemotion/internal/scenario"
)

func newTourCmd(a *app) *cobra.Command {
	var (
		initial  string
		duration float64
		out      string
	)
	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Write a scenario that visits every configured route",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := a.cfg.Resolver()
			if err != nil {
				return err
			}

			d := scenario.NewDirector(a.cfg.FPS)
			s, err := d.Tour(resolver.Routes(), navigation.Route(initial), duration)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = scenario.GeneratePath(scenario.DefaultDir)
			}
			if err := scenario.Write(s, path); err != nil {
				return fmt.Errorf("write scenario: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[+] Scenario saved: %s (%d events, %.1fs)\n", path, len(s.Events), s.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&initial, "initial", "home", "route the tour starts and ends on")
	cmd.Flags().Float64Var(&duration, "duration", 20, "target tour length in seconds")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: scenarios/scenario_<timestamp>.yaml)")
	return cmd
}
