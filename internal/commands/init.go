package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/expressivetesting/accounting/internal/config"
	"github.com/expressivetesting/accounting/internal/model"
	"github.com/expressivetesting/accounting/internal/statement"
)

func newInitCommand() *cobra.Command {
	var currency string
	var accountID string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default booking.yaml and an empty statement",
		Args:  cobra.MaximumNArgs(1),
		// init writes the config, so it must not try to load one.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, currency, accountID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized booking project at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "EUR", "ISO 4217 currency code")
	cmd.Flags().StringVar(&accountID, "account", "", "account ID for the empty statement (required)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func runInit(dir, currency, accountID string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, "booking.yaml")
	switch _, err := os.Stat(cfgPath); {
	case err == nil:
		return fmt.Errorf("%s already exists", cfgPath)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	cfg := config.Default()
	cfg.Currency = currency
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return writeStatement(filepath.Join(dir, accountID+".csv"), model.Account{ID: accountID}, cfg.Scale)
}

func writeStatement(path string, acct model.Account, scale int32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating statement: %w", err)
	}
	defer f.Close()

	if err := statement.WriteAccount(f, acct, scale); err != nil {
		return fmt.Errorf("writing statement: %w", err)
	}
	return f.Close()
}
