package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/safar/go-shop-admin/internal/models"
	"github.com/safar/go-shop-admin/internal/report"
	"github.com/safar/go-shop-admin/internal/store"
	"github.com/spf13/cobra"
)

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage orders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewOrders(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}

			rows := make([][]string, 0, len(st.Items()))
			for _, o := range st.Items() {
				rows = append(rows, []string{
					strconv.FormatInt(o.ID, 10),
					o.Date,
					o.User.Name,
					string(o.Status),
					o.Total.String(),
					strconv.Itoa(len(o.Items)),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "DATE", "CUSTOMER", "STATUS", "TOTAL", "ITEMS"}, rows)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status <id> <status>",
		Short: "Update an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}

			st := store.NewOrders(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}
			return st.UpdateStatus(cmd.Context(), id, models.OrderStatus(args[1]))
		},
	})

	return cmd
}

func newSalesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Confirmed orders: list, export, invoices",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List confirmed orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewSales(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}

			rows := make([][]string, 0, len(st.Items()))
			for _, s := range st.Items() {
				rows = append(rows, []string{
					strconv.FormatInt(s.ID, 10),
					s.Date,
					s.User.Name,
					s.User.Email,
					s.Total.String(),
					strconv.Itoa(len(s.Items)),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "DATE", "CUSTOMER", "EMAIL", "TOTAL", "ITEMS"}, rows)
			return nil
		},
	})

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export confirmed orders as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewSales(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path, _ := cmd.Flags().GetString("out"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				out = f
			}
			return report.WriteSalesCSV(out, st.Items())
		},
	}
	exportCmd.Flags().String("out", "", "write to file instead of stdout")
	cmd.AddCommand(exportCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "invoice <id>",
		Short: "Render the printable invoice for one sale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid sale id %q", args[0])
			}

			st := store.NewSales(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}

			sale, ok := st.Find(id)
			if !ok {
				return fmt.Errorf("no confirmed sale with id %d", id)
			}
			return report.RenderInvoice(cmd.OutOrStdout(), sale)
		},
	})

	return cmd
}
