// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/canonical/brokerage-service/pkg/status"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get the application's version",
	RunE: func(cmd *cobra.Command, args []string) error {
		b := status.Build()

		return render(cmd.OutOrStdout(), b, func(w io.Writer) {
			fmt.Fprintf(w, "App Version:\t%s\n", b.Version)
			if b.CommitHash != "" {
				fmt.Fprintf(w, "Commit:\t%s\n", b.CommitHash)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
