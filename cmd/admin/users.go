package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/safar/go-shop-admin/internal/forms"
	"github.com/safar/go-shop-admin/internal/models"
	"github.com/safar/go-shop-admin/internal/store"
	"github.com/spf13/cobra"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}
	cmd.AddCommand(newUsersListCmd(a), newUsersAddCmd(a), newUsersEditCmd(a), newUsersMeCmd(a))
	return cmd
}

func newUsersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewUsers(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}

			rows := make([][]string, 0, len(st.Items()))
			for _, u := range st.Items() {
				rows = append(rows, []string{
					strconv.FormatInt(u.ID, 10),
					u.Name,
					u.Email,
					strings.Join(u.Roles, ","),
					u.CreatedAt.Format("2006-01-02"),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "EMAIL", "ROLES", "CREATED"}, rows)
			return nil
		},
	}
}

func newUsersAddCmd(a *app) *cobra.Command {
	form := &forms.UserForm{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewUsers(a.client, a.notifier)
			user, err := st.Create(cmd.Context(), form)
			if err != nil {
				return reportFormErrors(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %d\n", user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "user name")
	cmd.Flags().StringVar(&form.Email, "email", "", "user email")
	return cmd
}

func newUsersEditCmd(a *app) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			st := store.NewUsers(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}

			var target *models.User
			for _, u := range st.Items() {
				if u.ID == id {
					user := u
					target = &user
					break
				}
			}

			dialog := &forms.Dialog[models.User]{}
			dialog.Open(forms.DialogEdit, target)
			defer func() {
				dialog.Close()
				dialog.AckClosed()
			}()

			form := &forms.UserForm{}
			form.Reset(target)
			if cmd.Flags().Changed("name") {
				form.Name = name
			}
			if cmd.Flags().Changed("email") {
				form.Email = email
			}

			user, err := st.Update(cmd.Context(), id, form)
			if err != nil {
				return reportFormErrors(cmd, err)
			}
			if user != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated user %d\n", user.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name")
	cmd.Flags().StringVar(&email, "email", "", "user email")
	return cmd
}

func newUsersMeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			me, err := store.NewUsers(a.client, a.notifier).Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> roles=%s\n", me.Name, me.Email, strings.Join(me.Roles, ","))
			return nil
		},
	}
}

// reportFormErrors prints local validation failures per field before
// bubbling the error up.
func reportFormErrors(cmd *cobra.Command, err error) error {
	for field, msg := range forms.FieldErrors(err) {
		if field == "" {
			continue
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, msg)
	}
	return err
}
