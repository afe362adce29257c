// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

type tokenOutput struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Expiry      time.Time `json:"expiry"`
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token for the API using the client credentials flow",
	Long: `Get an access token for the API using the client credentials flow.
The token can be passed to the other commands with --token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		clientID, _ := cmd.Flags().GetString("client-id")
		clientSecret, _ := cmd.Flags().GetString("client-secret")
		tokenURL, _ := cmd.Flags().GetString("token-url")
		issuerURL, _ := cmd.Flags().GetString("issuer-url")
		scopes, _ := cmd.Flags().GetStringSlice("scopes")

		if tokenURL == "" {
			if issuerURL == "" {
				return fmt.Errorf("either --token-url or --issuer-url must be provided")
			}

			provider, err := oidc.NewProvider(ctx, issuerURL)
			if err != nil {
				return fmt.Errorf("failed to discover issuer %s: %w", issuerURL, err)
			}
			tokenURL = provider.Endpoint().TokenURL
		}

		config := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
		}

		token, err := config.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		out := tokenOutput{AccessToken: token.AccessToken, TokenType: token.Type(), Expiry: token.Expiry}

		return render(cmd.OutOrStdout(), out, func(w io.Writer) {
			fmt.Fprintln(w, token.AccessToken)
		})
	},
}

func init() {
	tokenCmd.Flags().String("client-id", "", "OAuth2 client id")
	tokenCmd.Flags().String("client-secret", "", "OAuth2 client secret")
	tokenCmd.Flags().String("token-url", "", "Token endpoint, discovered from --issuer-url when empty")
	tokenCmd.Flags().String("issuer-url", "", "OIDC issuer used for discovery")
	tokenCmd.Flags().StringSlice("scopes", []string{"brokerage:api"}, "Requested scopes")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")

	rootCmd.AddCommand(tokenCmd)
}
