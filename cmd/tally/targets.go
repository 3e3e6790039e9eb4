package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
)

func targetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage monthly spending targets",
		Long: `Set and list monthly spending targets. Setting a target for a month
that already has one overwrites it; a target of 0 clears it.`,
	}

	cmd.AddCommand(setTargetCmd())
	cmd.AddCommand(listTargetsCmd())

	return cmd
}

func setTargetCmd() *cobra.Command {
	var (
		monthFlag int
		yearFlag  int
		amountStr string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the spending target for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			month, year, err := resolveMonth(monthFlag, yearFlag)
			if err != nil {
				return err
			}
			amount, err := parseAmount(amountStr)
			if err != nil {
				return err
			}
			if amount < 0 {
				return fmt.Errorf("target cannot be negative")
			}

			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.SetTarget(ctx, month, year, amount); err != nil {
				return fmt.Errorf("failed to set target: %w", err)
			}

			if amount == 0 {
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Cleared target for %s.", formatMonth(month, year))))
			} else {
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Target for %s set to %s.",
					formatMonth(month, year), cli.FormatAmount(amount, currencySymbol()))))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&monthFlag, "month", 0, "month 1-12 (default: current)")
	cmd.Flags().IntVar(&yearFlag, "year", 0, "four-digit year (default: current)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "target in major units, e.g. 500.00")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configured targets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			targets := s.Snapshot().Targets
			if len(targets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No targets configured."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Month"),
				cli.HeaderStyle.Render("Target"),
				cli.HeaderStyle.Render("Spent"))

			symbol := currencySymbol()
			for _, t := range targets {
				spent := s.MonthlyTotal(t.Month, t.Year)
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					formatMonth(t.Month, t.Year),
					cli.FormatAmount(t.Amount, symbol),
					cli.FormatAmount(spent, symbol))
			}
			return nil
		},
	}
}
