// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var accessCmd = &cobra.Command{
	Use:   "access [route]",
	Short: "Ask the route guard whether the session may open a route",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		a, err := c.Access(cmd.Context(), args[0])
		if err != nil {
			return apiFailure("failed to evaluate access", err)
		}

		return render(cmd.OutOrStdout(), a, func(w io.Writer) {
			fmt.Fprintln(w, "ROUTE\tOUTCOME\tEFFECTIVE_ROLE\tREDIRECT")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Route.Path, a.Outcome, a.EffectiveRole, a.Redirect)
		})
	},
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the guarded routes and the roles they admit",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		routes, err := c.Routes(cmd.Context())
		if err != nil {
			return apiFailure("failed to list routes", err)
		}

		return render(cmd.OutOrStdout(), routes, func(w io.Writer) {
			fmt.Fprintln(w, "PATH\tALLOWED_ROLES")
			for _, r := range routes {
				fmt.Fprintf(w, "%s\t%s\n", r.Path, joinRoles(r.AllowedRoles))
			}
		})
	},
}

var adminCheckCmd = &cobra.Command{
	Use:   "admin-check",
	Short: "Run the superadmin check for the session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}

		r, err := c.AdminCheck(cmd.Context())
		if err != nil {
			return apiFailure("admin check failed", err)
		}

		return render(cmd.OutOrStdout(), r, func(w io.Writer) {
			fmt.Fprintln(w, "RESULT\tMESSAGE")
			fmt.Fprintf(w, "%s\t%s\n", r.Result, r.Result.Message())
		})
	},
}

func init() {
	rootCmd.AddCommand(accessCmd, routesCmd, adminCheckCmd)
}
