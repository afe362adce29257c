// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	endpoint    string
	userID      string
	sessionID   string
	bearerToken string
	output      string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "brokerage",
	Short: "Brokerage Service",
	Long:  `Brokerage Service serves role resolution and invitations, the CLI also talks to a running instance.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "http://localhost:8080", "Brokerage service endpoint")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "", "User ID forwarded as the identity proxy header")
	rootCmd.PersistentFlags().StringVar(&sessionID, "session-id", "", "Session ID keeping the selected role between calls")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "token", "", "Bearer token, see the token command")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format (text or json)")
}
