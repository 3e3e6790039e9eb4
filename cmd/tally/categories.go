package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

func categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage expense categories",
		Long: `List, add, edit, and delete expense categories, and manage the
linked descriptions used to guess a category from an expense.`,
	}

	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(editCategoryCmd())
	cmd.AddCommand(linkCategoryCmd())
	cmd.AddCommand(unlinkCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func addCategoryCmd() *cobra.Command {
	var (
		color string
		links []string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("category name cannot be empty")
			}

			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cat := model.Category{
				ID:                 uuid.NewString(),
				Name:               name,
				Color:              color,
				LinkedDescriptions: links,
			}
			if err := s.AddCategory(ctx, cat); err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Created category %q (%s)", name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#888888", "display color as a hex string")
	cmd.Flags().StringArrayVar(&links, "link", nil, "linked description for auto-guessing (repeatable)")

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			categories := s.Snapshot().Categories
			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'tally category add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Color"),
				cli.HeaderStyle.Render("Linked descriptions"))

			for _, cat := range categories {
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color)).Render("■")
				linked := strings.Join(cat.LinkedDescriptions, ", ")
				if linked == "" {
					linked = cli.SubtleStyle.Render("(none)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\n", cat.ID, cat.Name, swatch, cat.Color, linked)
			}
			return nil
		},
	}
}

func editCategoryCmd() *cobra.Command {
	var (
		name  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a category's name or color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, ok := s.CategoryByID(id); !ok {
				return fmt.Errorf("category %q: %w", id, common.ErrNotFound)
			}

			var patch model.CategoryPatch
			if cmd.Flags().Changed("name") {
				if strings.TrimSpace(name) == "" {
					return fmt.Errorf("category name cannot be empty")
				}
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}

			if err := s.UpdateCategory(ctx, id, patch); err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Category updated."))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new category name")
	cmd.Flags().StringVar(&color, "color", "", "new display color")

	return cmd
}

func linkCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <id> <text>",
		Short: "Add a linked description to a category",
		Long: `Add a free-text fragment to a category. Future expenses whose
description contains the fragment (case-insensitively) are guessed
into this category.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, text := args[0], args[1]

			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cat, ok := s.CategoryByID(id)
			if !ok {
				return fmt.Errorf("category %q: %w", id, common.ErrNotFound)
			}

			linked := append(cat.LinkedDescriptions, text)
			patch := model.CategoryPatch{LinkedDescriptions: linked}
			if err := s.UpdateCategory(ctx, id, patch); err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Linked %q to %q.", text, cat.Name)))
			return nil
		},
	}
}

func unlinkCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <id> <text>",
		Short: "Remove a linked description from a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, text := args[0], args[1]

			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cat, ok := s.CategoryByID(id)
			if !ok {
				return fmt.Errorf("category %q: %w", id, common.ErrNotFound)
			}

			linked := make([]string, 0, len(cat.LinkedDescriptions))
			removed := false
			for _, ld := range cat.LinkedDescriptions {
				if ld == text && !removed {
					removed = true
					continue
				}
				linked = append(linked, ld)
			}
			if !removed {
				return fmt.Errorf("%q is not linked to %q", text, cat.Name)
			}

			patch := model.CategoryPatch{LinkedDescriptions: linked}
			if err := s.UpdateCategory(ctx, id, patch); err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Unlinked %q from %q.", text, cat.Name)))
			return nil
		},
	}
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category. Expenses filed under it are kept and become
unassigned.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			s, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cat, ok := s.CategoryByID(id)
			if !ok {
				return fmt.Errorf("category %q: %w", id, common.ErrNotFound)
			}

			if err := s.DeleteCategory(ctx, id); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted category %q. Its expenses are now unassigned.", cat.Name)))
			return nil
		},
	}
}
