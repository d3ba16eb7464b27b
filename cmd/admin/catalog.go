package main

import (
	"fmt"
	"strconv"

	"github.com/safar/go-shop-admin/internal/forms"
	"github.com/safar/go-shop-admin/internal/store"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewCategories(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}

			rows := make([][]string, 0, len(st.Items()))
			for _, c := range st.Items() {
				rows = append(rows, []string{
					strconv.FormatInt(c.ID, 10),
					c.Name,
					c.CreatedAt.Format("2006-01-02"),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "CREATED"}, rows)
			return nil
		},
	})

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewCategories(a.client, a.notifier)
			category, err := st.Create(cmd.Context(), &forms.CategoryForm{Name: args[0]})
			if err != nil {
				return reportFormErrors(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created category %d\n", category.ID)
			return nil
		},
	}
	cmd.AddCommand(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}

			st := store.NewCategories(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}
			if _, err := st.Update(cmd.Context(), id, &forms.CategoryForm{Name: args[1]}); err != nil {
				return reportFormErrors(cmd, err)
			}
			return nil
		},
	}
	cmd.AddCommand(editCmd)

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}

			st := store.NewCategories(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}
			return st.Delete(cmd.Context(), id)
		},
	}
	cmd.AddCommand(rmCmd)

	return cmd
}

func newBrandsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brands",
		Short: "Manage brands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List brands",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewBrands(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}

			rows := make([][]string, 0, len(st.Items()))
			for _, b := range st.Items() {
				rows = append(rows, []string{
					strconv.FormatInt(b.ID, 10),
					b.Name,
					b.CreatedAt.Format("2006-01-02"),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "CREATED"}, rows)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewBrands(a.client, a.notifier)
			brand, err := st.Create(cmd.Context(), &forms.BrandForm{Name: args[0]})
			if err != nil {
				return reportFormErrors(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created brand %d\n", brand.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit <id> <name>",
		Short: "Rename a brand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid brand id %q", args[0])
			}

			st := store.NewBrands(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}
			if _, err := st.Update(cmd.Context(), id, &forms.BrandForm{Name: args[1]}); err != nil {
				return reportFormErrors(cmd, err)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid brand id %q", args[0])
			}

			st := store.NewBrands(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}
			return st.Delete(cmd.Context(), id)
		},
	})

	return cmd
}
