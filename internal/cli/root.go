// Package cli implements the routemotion command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivlev/routemotion/internal/config"
	"github.com/ivlev/routemotion/internal/system"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configPath string
	logLevel   string
}

// app is the state shared by subcommands once the root has loaded the
// configuration.
type app struct {
	flags rootFlags
	cfg   *config.Config
}

// NewRootCmd creates the top-level "routemotion" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "routemotion",
		Short: "Simulate animated route transitions",
		Long: `routemotion drives route transition animations frame by frame: it resolves
which variant a navigation uses, animates both layers with tweens or springs
and settles once the animation is over. Scenarios script navigations over time.`,
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configPath, "config", "", "config file (default: ./routemotion.yaml if present)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: from config)")

	root.AddCommand(newSimulateCmd(a))
	root.AddCommand(newResolveCmd(a))
	root.AddCommand(newTourCmd(a))
	root.AddCommand(newPreviewCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	cfg.BuildVersion = Version
	a.cfg = cfg

	level := cfg.LogLevel
	if a.flags.logLevel != "" {
		level = a.flags.logLevel
	}
	system.SetLogger(system.NewTextLogger(cmd.ErrOrStderr(), level))
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "[!]", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the routemotion version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "routemotion %s\n", Version)
			return nil
		},
	}
}
