package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/safar/go-shop-admin/internal/report"
	"github.com/safar/go-shop-admin/internal/store"
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Dashboard stats and reports",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := report.NewService(a.client).Stats(cmd.Context())
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Users", strconv.Itoa(stats.TotalUsers)},
				{"Categories", strconv.Itoa(stats.TotalCategories)},
				{"Brands", strconv.Itoa(stats.TotalBrands)},
				{"Products", strconv.Itoa(stats.TotalProducts)},
				{"  active", strconv.Itoa(stats.TotalActiveProducts)},
				{"  inactive", strconv.Itoa(stats.TotalInactiveProducts)},
				{"Pending orders", strconv.Itoa(stats.TotalPendingOrders)},
				{"Confirmed orders", strconv.Itoa(stats.TotalConfirmedOrders)},
				{"Shipped orders", strconv.Itoa(stats.TotalShippedOrders)},
				{"Delivered orders", strconv.Itoa(stats.TotalDeliveredOrders)},
				{"Cancelled orders", strconv.Itoa(stats.TotalCancelledOrders)},
			}
			printTable(cmd.OutOrStdout(), []string{"METRIC", "VALUE"}, rows)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "report",
		Short: "Show the precomputed orders report",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := report.NewService(a.client)
			rep, err := svc.OrdersReport(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total orders: %d\n", rep.TotalOrders)
			fmt.Fprintf(out, "Total revenue: %s MMK\n", rep.TotalRevenue)
			fmt.Fprintf(out, "Average order value: %s MMK\n\n", rep.AverageOrderValue)

			if len(rep.TopProducts) > 0 {
				rows := make([][]string, 0, len(rep.TopProducts))
				for _, p := range rep.TopProducts {
					rows = append(rows, []string{p.Name, strconv.Itoa(p.Quantity), p.Revenue.String()})
				}
				printTable(out, []string{"TOP PRODUCT", "QTY", "REVENUE"}, rows)
				fmt.Fprintln(out)
			}

			if len(rep.OrderStatusDistribution) > 0 {
				rows := make([][]string, 0, len(rep.OrderStatusDistribution))
				for status, count := range rep.OrderStatusDistribution {
					rows = append(rows, []string{status, strconv.Itoa(count)})
				}
				printTable(out, []string{"STATUS", "ORDERS"}, rows)
			}

			yearly, err := svc.YearlyReport(cmd.Context())
			if err != nil {
				return err
			}
			if len(yearly) > 0 {
				years := make([]int, 0, len(yearly))
				for year := range yearly {
					years = append(years, year)
				}
				sort.Ints(years)

				fmt.Fprintln(out)
				rows := make([][]string, 0, len(years))
				for _, year := range years {
					rows = append(rows, []string{
						strconv.Itoa(year),
						strconv.Itoa(yearly[year].Orders),
						yearly[year].Revenue.String(),
					})
				}
				printTable(out, []string{"YEAR", "ORDERS", "REVENUE"}, rows)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "chart",
		Short: "Project confirmed sales into monthly chart series",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewSales(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}
			sales := st.Items()

			out := cmd.OutOrStdout()
			for _, year := range report.Years(sales) {
				counts := report.MonthlyCounts(sales, year)
				revenue := report.MonthlyRevenue(sales, year)

				fmt.Fprintf(out, "%d\n", year)
				rows := make([][]string, 0, 12)
				for m := 0; m < 12; m++ {
					rows = append(rows, []string{
						strconv.Itoa(m + 1),
						strconv.Itoa(counts[m]),
						revenue[m].String(),
					})
				}
				printTable(out, []string{"MONTH", "ORDERS", "REVENUE"}, rows)
				fmt.Fprintln(out)
			}
			return nil
		},
	})

	return cmd
}
