package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"invertdeck/backend/internal/deck"
	"invertdeck/backend/internal/infra/config"
	"invertdeck/backend/internal/infra/logger"
	"invertdeck/backend/internal/infra/workspace"
	"invertdeck/backend/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// app is the wiring shared by the subcommands, built once flags are parsed.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	deck    *deck.Deck
	process *usecase.ProcessDocuments
	inspect *usecase.InspectDocuments
	cleanup func() error
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
		a          = &app{}
	)

	cmd := &cobra.Command{
		Use:          "invertdeck",
		Short:        "Invert PDF slides and pack them three per page",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if debug {
				cfg.Log.Debug = true
			}

			cleanup, err := logger.Setup(logger.Config{
				Debug:  cfg.Log.Debug,
				Format: cfg.Log.Format,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			a.wire(cfg, logger.L(), cleanup)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.cleanup != nil {
				return a.cleanup()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "invertdeck.yaml", "config file (defaults apply when missing)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(serveCmd(a))
	cmd.AddCommand(processCmd(a))
	cmd.AddCommand(inspectCmd(a))
	return cmd
}

func (a *app) wire(cfg config.Config, log *slog.Logger, cleanup func() error) {
	d := deck.New(cfg.Layout, log)

	a.cfg = cfg
	a.log = log
	a.deck = d
	a.process = usecase.NewProcessDocuments(d, workspace.NewFactory(cfg.Workspace.Root, cfg.Workspace.KeepArtifacts), log)
	a.inspect = usecase.NewInspectDocuments(d)
	a.cleanup = cleanup
}
