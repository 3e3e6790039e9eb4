package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
)

func reportCmd() *cobra.Command {
	var (
		monthFlag int
		yearFlag  int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show spending for a month",
		Long: `Show the month's total spending, the per-category breakdown, and
how the total compares to the month's target.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			month, year, err := resolveMonth(monthFlag, yearFlag)
			if err != nil {
				return err
			}

			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			symbol := currencySymbol()
			total := s.MonthlyTotal(month, year)

			fmt.Println(cli.TitleStyle.Render(formatMonth(month, year)))
			fmt.Printf("Total spent: %s\n", cli.FormatAmount(total, symbol))

			// A target of 0 is treated as "no target configured".
			if target := s.TargetFor(month, year); target > 0 {
				fmt.Printf("Target:      %s\n", cli.FormatAmount(target, symbol))
				delta := s.TargetDelta(month, year)
				if delta > 0 {
					fmt.Println(cli.ErrorStyle.Render(fmt.Sprintf("Over by %s", cli.FormatAmount(delta, symbol))))
				} else {
					fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Under by %s", cli.FormatAmount(-delta, symbol))))
				}
			}

			rows := s.CategoryBreakdown(month, year)
			if len(rows) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No data this month"))
				return nil
			}

			fmt.Println()
			fmt.Println(cli.HeaderStyle.Render("By category"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			for _, row := range rows {
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(row.Color)).Render("■")
				fmt.Fprintf(w, "%s %s\t%s\n", swatch, row.Name, cli.FormatAmount(row.Amount, symbol))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&monthFlag, "month", 0, "month 1-12 (default: current)")
	cmd.Flags().IntVar(&yearFlag, "year", 0, "four-digit year (default: current)")

	return cmd
}
