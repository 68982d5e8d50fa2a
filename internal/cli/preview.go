package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ivlev/routemotion/internal/engine"
	"github.com/ivlev/routemotion/internal/orchestrator"
	"github.com/ivlev/routemotion/internal/renderer"
	"github.com/ivlev/routemotion/internal/scenario"
)

func newPreviewCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "preview SCENARIO",
		Short: "Render every frame of a scenario as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Read(args[0])
			if err != nil {
				return err
			}

			p, err := engine.NewProject(a.cfg, []*scenario.Scenario{s})
			if err != nil {
				return err
			}
			p.Out = cmd.OutOrStdout()

			var png *renderer.PNGRenderer
			p.Renderers = func(int, *scenario.Scenario) (orchestrator.Renderer, error) {
				png = renderer.NewPNGRenderer(renderer.NewPreview(a.cfg.Preview.Width, a.cfg.Preview.Height), out)
				return png, nil
			}

			if _, err := p.Run(cmd.Context()); err != nil {
				return err
			}
			if err := png.Err(); err != nil {
				return fmt.Errorf("render preview: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[+] %d frames written to %s\n", png.Written(), filepath.Clean(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "preview", "directory for the PNG frames")
	return cmd
}
