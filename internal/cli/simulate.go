package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/routemotion/internal/engine"
	"github.com/ivlev/routemotion/internal/orchestrator"
	"github.com/ivlev/routemotion/internal/renderer"
	"github.com/ivlev/routemotion/internal/scenario"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		dir       string
		showFrame bool
		stats     bool
	)
	cmd := &cobra.Command{
		Use:   "simulate [scenario.yaml...]",
		Short: "Replay scenarios and report transitions",
		Long: `Replay one or more scenarios through the transition engine. Without
arguments the most recent scenario in --dir is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := loadScenarios(args, dir)
			if err != nil {
				return err
			}
			if stats {
				a.cfg.ShowStats = true
			}

			p, err := engine.NewProject(a.cfg, scenarios)
			if err != nil {
				return err
			}
			p.Out = cmd.OutOrStdout()
			styles := make([]*renderer.StyleRenderer, len(scenarios))
			if showFrame {
				// frames of parallel scenarios would interleave
				a.cfg.Workers = 1
				p.Renderers = func(i int, _ *scenario.Scenario) (orchestrator.Renderer, error) {
					styles[i] = renderer.NewStyleRenderer(cmd.OutOrStdout())
					return styles[i], nil
				}
			}

			reports, err := p.Run(cmd.Context())
			if err != nil {
				return err
			}
			for i, sr := range styles {
				if sr == nil {
					continue
				}
				if err := sr.Err(); err != nil {
					return fmt.Errorf("write frames of %s: %w", scenarios[i].Name, err)
				}
			}
			for _, r := range reports {
				fmt.Fprintf(cmd.OutOrStdout(), "[+] %s\n", r)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", scenario.DefaultDir, "directory searched for the latest scenario")
	cmd.Flags().BoolVar(&showFrame, "frames", false, "print the CSS of every frame")
	cmd.Flags().BoolVar(&stats, "stats", false, "print a performance report")
	return cmd
}

func loadScenarios(paths []string, dir string) ([]*scenario.Scenario, error) {
	if len(paths) == 0 {
		latest, err := scenario.FindLatest(dir)
		if err != nil {
			return nil, err
		}
		paths = []string{latest}
	}

	scenarios := make([]*scenario.Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := scenario.Read(path)
		if err != nil {
			return nil, fmt.Errorf("read scenario: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
