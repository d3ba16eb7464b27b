package main

import (
	"encoding/json"
	"fmt"

	"github.com/safar/go-shop-admin/internal/store"
	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print the bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{"email": email, "password": password}
			raw, err := a.client.Call(cmd.Context(), "post", "auth/login", payload)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			var resp struct {
				AccessToken string `json:"accessToken"`
				Token       string `json:"token"`
			}
			if err := json.Unmarshal(raw, &resp); err != nil {
				return fmt.Errorf("decode login response: %w", err)
			}
			token := resp.AccessToken
			if token == "" {
				token = resp.Token
			}
			if token == "" {
				return fmt.Errorf("login response carried no token")
			}

			a.client.SetToken(token)

			me, err := store.NewUsers(a.client, a.notifier).Me(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", me.Name, me.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "API_TOKEN=%s\n", token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the bearer token for this process",
		Run: func(cmd *cobra.Command, args []string) {
			a.client.ClearToken()
			fmt.Fprintln(cmd.OutOrStdout(), "Token cleared. Unset API_TOKEN to forget it permanently.")
		},
	}
}
