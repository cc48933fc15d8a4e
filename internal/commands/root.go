package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/expressivetesting/accounting/internal/accounting"
	"github.com/expressivetesting/accounting/internal/buildinfo"
	"github.com/expressivetesting/accounting/internal/config"
)

// app holds state shared by subcommands once the config is loaded.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func (a *app) load(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	logger, err := a.cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) service() *accounting.Service {
	return accounting.NewService(
		accounting.WithScale(a.cfg.Scale),
		accounting.WithLogger(a.logger),
	)
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "booking",
		Short:   "Book credits and debits onto account statements",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to booking.yaml (defaults apply when empty)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCreditCommand(a))
	rootCmd.AddCommand(newDebitCommand(a))
	rootCmd.AddCommand(newBalanceCommand(a))

	return rootCmd
}
