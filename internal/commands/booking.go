package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/expressivetesting/accounting/internal/model"
	"github.com/expressivetesting/accounting/internal/statement"
)

type bookingFlags struct {
	account string
	amount  string
	reason  string
	out     string
}

func (f *bookingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.account, "account", "", "statement CSV to book onto (required)")
	cmd.Flags().StringVar(&f.amount, "amount", "", "positive amount, e.g. 99.99 (required)")
	cmd.Flags().StringVar(&f.reason, "reason", "", "booking reason (required)")
	cmd.Flags().StringVar(&f.out, "out", "", "write the resulting statement here instead of stdout")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("reason")
}

func newCreditCommand(a *app) *cobra.Command {
	var flags bookingFlags
	var creditor model.Creditor

	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Pay an amount from an account to a creditor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, amount, err := flags.load()
			if err != nil {
				return err
			}

			result, err := a.service().Credit(cmd.Context(), acct, amount, creditor, flags.reason)
			if err != nil {
				return fmt.Errorf("credit: %w", err)
			}
			return flags.write(cmd, result, a.cfg.Currency, a.cfg.Scale)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&creditor.Name, "creditor-name", "", "creditor name (required)")
	cmd.Flags().StringVar(&creditor.ReferenceID, "creditor-ref", "", "creditor reference ID (required)")
	_ = cmd.MarkFlagRequired("creditor-name")
	_ = cmd.MarkFlagRequired("creditor-ref")

	return cmd
}

func newDebitCommand(a *app) *cobra.Command {
	var flags bookingFlags

	cmd := &cobra.Command{
		Use:   "debit",
		Short: "Book an incoming amount onto an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, amount, err := flags.load()
			if err != nil {
				return err
			}

			result, err := a.service().Debit(cmd.Context(), acct, amount, flags.reason)
			if err != nil {
				return fmt.Errorf("debit: %w", err)
			}
			return flags.write(cmd, result, a.cfg.Currency, a.cfg.Scale)
		},
	}

	flags.register(cmd)
	return cmd
}

func newBalanceCommand(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print the balance of a statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := readStatement(path)
			if err != nil {
				return err
			}
			if verrs := acct.Validate(); len(verrs) > 0 {
				return fmt.Errorf("statement %s is inconsistent: %v", path, verrs[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s (%d bookings)\n",
				acct.ID, acct.Balance.StringFixed(a.cfg.Scale), a.cfg.Currency, len(acct.Bookings))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "account", "", "statement CSV (required)")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

func (f *bookingFlags) load() (model.Account, decimal.Decimal, error) {
	amount, err := decimal.NewFromString(f.amount)
	if err != nil {
		return model.Account{}, decimal.Zero, fmt.Errorf("parsing amount %q: %w", f.amount, err)
	}

	acct, err := readStatement(f.account)
	if err != nil {
		return model.Account{}, decimal.Zero, err
	}
	return acct, amount, nil
}

func (f *bookingFlags) write(cmd *cobra.Command, acct model.Account, currency string, scale int32) error {
	if f.out == "" {
		if err := statement.WriteAccount(cmd.OutOrStdout(), acct, scale); err != nil {
			return err
		}
	} else if err := writeStatement(f.out, acct, scale); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "balance: %s %s\n", acct.Balance.StringFixed(scale), currency)
	return nil
}

// readStatement reads a statement file. An empty statement takes its
// account ID from the file name.
func readStatement(path string) (model.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Account{}, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	acct, err := statement.ReadAccount(f)
	if err != nil {
		return model.Account{}, fmt.Errorf("reading statement %s: %w", path, err)
	}
	if acct.ID == "" {
		acct.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return acct, nil
}
