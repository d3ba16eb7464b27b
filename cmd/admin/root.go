package main

import (
	"log/slog"

	"github.com/safar/go-shop-admin/internal/api"
	"github.com/safar/go-shop-admin/internal/config"
	"github.com/safar/go-shop-admin/internal/sync"
	"github.com/spf13/cobra"
)

// app carries the one authenticated client instance every command
// shares.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	client   *api.Client
	notifier sync.Notifier
}

func newRootCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, logger: logger}

	root := &cobra.Command{
		Use:           "admin",
		Short:         "Back-office administration for the shop API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.client = api.NewClient(&cfg.API).WithLogger(logger)
			a.notifier = sync.LogNotifier{Logger: logger}
		},
	}

	root.PersistentFlags().StringVar(&cfg.API.BaseURL, "base-url", cfg.API.BaseURL, "API base URL")
	root.PersistentFlags().StringVar(&cfg.API.Token, "token", cfg.API.Token, "bearer token")
	root.PersistentFlags().BoolVar(&cfg.Log.Verbose, "verbose", cfg.Log.Verbose, "debug logging")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newUsersCmd(a),
		newCategoriesCmd(a),
		newBrandsCmd(a),
		newProductsCmd(a),
		newOrdersCmd(a),
		newSalesCmd(a),
		newDashboardCmd(a),
	)

	return root
}
