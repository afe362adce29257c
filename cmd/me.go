// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/pkg/session"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated profile and its roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		u, err := c.Me(cmd.Context())
		if err != nil {
			return apiFailure("failed to load profile", err)
		}

		return render(cmd.OutOrStdout(), u, func(w io.Writer) {
			fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLES")
			fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\n", u.ID, u.Email, u.FirstName, u.LastName, joinRoles(u.Roles))
		})
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Inspect and switch the active role of a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		v, err := c.Roles(cmd.Context())
		if err != nil {
			return apiFailure("failed to load roles", err)
		}

		return renderRoles(cmd, v)
	},
}

var selectRoleCmd = &cobra.Command{
	Use:   "select [role]",
	Short: "Select the active role, requires --session-id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := roles.Parse(args[0])
		if err != nil {
			return err
		}

		c, err := getClient()
		if err != nil {
			return err
		}

		v, err := c.SelectRole(cmd.Context(), role)
		if err != nil {
			return apiFailure("failed to select role", err)
		}

		return renderRoles(cmd, v)
	},
}

var refreshRolesCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Reload the role claims from the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		v, err := c.RefreshRoles(cmd.Context())
		if err != nil {
			return apiFailure("failed to refresh roles", err)
		}

		return renderRoles(cmd, v)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the role selected in the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		if err := c.ResetSession(cmd.Context()); err != nil {
			return apiFailure("failed to reset session", err)
		}

		cmd.Println("Session reset")
		return nil
	},
}

func init() {
	rolesCmd.AddCommand(selectRoleCmd, refreshRolesCmd)
	rootCmd.AddCommand(meCmd, rolesCmd, logoutCmd)
}

func renderRoles(cmd *cobra.Command, v *session.View) error {
	return render(cmd.OutOrStdout(), v, func(w io.Writer) {
		fmt.Fprintln(w, "ROLE\tNAME\tSELECTED")
		for _, r := range v.AvailableRoles {
			selected := ""
			if r == v.SelectedRole {
				selected = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", r, r.DisplayName(), selected)
		}
	})
}

func joinRoles(rs []roles.Role) string {
	if len(rs) == 0 {
		return "-"
	}
	return strings.Join(roles.Strings(rs), ",")
}
