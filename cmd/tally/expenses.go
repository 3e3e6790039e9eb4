package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and manage expenses",
		Long:  `Add, list, edit, and delete individual expenses.`,
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(editExpenseCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		date        string
		description string
		amountStr   string
		categoryID  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long: `Record a new expense. When no category is given, one is guessed
from the description using each category's linked descriptions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if strings.TrimSpace(description) == "" {
				return fmt.Errorf("description cannot be empty")
			}
			amount, err := parseAmount(amountStr)
			if err != nil {
				return err
			}
			if amount <= 0 {
				return fmt.Errorf("amount must be positive")
			}
			if date == "" {
				date = time.Now().Format(model.DateLayout)
			}
			if _, err := time.Parse(model.DateLayout, date); err != nil {
				return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
			}

			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			guessed := false
			if categoryID == "" {
				if id, ok := s.GuessCategory(description); ok {
					categoryID = id
					guessed = true
				}
			}

			id, err := s.AddExpense(ctx, model.ExpenseDraft{
				Date:        date,
				Description: description,
				Amount:      amount,
				CategoryID:  categoryID,
			})
			if err != nil {
				return fmt.Errorf("failed to add expense: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded %s on %s (%s)",
				cli.FormatAmount(amount, currencySymbol()), date, id)))
			if guessed {
				if cat, ok := s.CategoryByID(categoryID); ok {
					fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Filed under %q based on the description", cat.Name)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "expense date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&description, "description", "", "what the money was spent on")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount in major units, e.g. 12.34")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id (default: guessed from description)")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var (
		monthFlag int
		yearFlag  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses for a month",
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

			expenses := s.ExpensesForMonth(month, year)
			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No expenses recorded for %s.", formatMonth(month, year))))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(formatMonth(month, year)))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Category"))

			symbol := currencySymbol()
			for _, e := range expenses {
				name := cli.SubtleStyle.Render("(unassigned)")
				if cat, ok := s.CategoryByID(e.CategoryID); ok {
					name = cat.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Date, e.Description, cli.FormatAmount(e.Amount, symbol), name)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&monthFlag, "month", 0, "month 1-12 (default: current)")
	cmd.Flags().IntVar(&yearFlag, "year", 0, "four-digit year (default: current)")

	return cmd
}

func editExpenseCmd() *cobra.Command {
	var (
		date        string
		description string
		amountStr   string
		categoryID  string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit fields of an existing expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !expenseExists(s.Snapshot().Expenses, id) {
				return fmt.Errorf("expense %q: %w", id, common.ErrNotFound)
			}

			var patch model.ExpensePatch
			if cmd.Flags().Changed("date") {
				if _, err := time.Parse(model.DateLayout, date); err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
				}
				patch.Date = &date
			}
			if cmd.Flags().Changed("description") {
				if strings.TrimSpace(description) == "" {
					return fmt.Errorf("description cannot be empty")
				}
				patch.Description = &description
			}
			if cmd.Flags().Changed("amount") {
				amount, err := parseAmount(amountStr)
				if err != nil {
					return err
				}
				if amount <= 0 {
					return fmt.Errorf("amount must be positive")
				}
				patch.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				patch.CategoryID = &categoryID
			}

			if err := s.UpdateExpense(ctx, id, patch); err != nil {
				return fmt.Errorf("failed to update expense: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Expense updated."))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "new date as YYYY-MM-DD")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount in major units")
	cmd.Flags().StringVar(&categoryID, "category", "", "new category id (empty to unassign)")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !expenseExists(s.Snapshot().Expenses, id) {
				return fmt.Errorf("expense %q: %w", id, common.ErrNotFound)
			}

			if err := s.DeleteExpense(ctx, id); err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Expense deleted."))
			return nil
		},
	}
}

func expenseExists(expenses []model.Expense, id string) bool {
	for _, e := range expenses {
		if e.ID == id {
			return true
		}
	}
	return false
}
