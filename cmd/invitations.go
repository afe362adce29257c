// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/canonical/brokerage-service/internal/db"
	"github.com/canonical/brokerage-service/pkg/invitation"
)

var invitationsCmd = &cobra.Command{
	Use:     "invitations",
	Aliases: []string{"inv"},
	Short:   "List, send and answer invitations",
}

var listInvitationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pending invitations addressed to the session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		inbox, err := getInbox()
		if err != nil {
			return err
		}

		if err := inbox.Load(cmd.Context()); err != nil {
			return apiFailure("failed to load invitations", err)
		}

		return renderInvitations(cmd.OutOrStdout(), inbox.Invitations())
	},
}

var sentInvitationsCmd = &cobra.Command{
	Use:   "sent",
	Short: "List the invitations sent by the session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetUint64("page")
		size, _ := cmd.Flags().GetUint64("size")

		c, err := getClient()
		if err != nil {
			return err
		}

		views, err := c.ListSentInvitations(cmd.Context(), db.Pagination{Page: page, Size: size})
		if err != nil {
			return apiFailure("failed to load sent invitations", err)
		}

		return renderInvitations(cmd.OutOrStdout(), views)
	},
}

var createInvitationCmd = &cobra.Command{
	Use:   "create [email] [role]",
	Short: "Invite someone to a brokerage, project or simulation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &invitation.CreateRequest{Email: args[0], Role: args[1]}

		for flag, target := range map[string]**string{
			"brokerage":  &req.BrokerageID,
			"project":    &req.ProjectID,
			"simulation": &req.SimulationID,
		} {
			if v, _ := cmd.Flags().GetString(flag); v != "" {
				*target = &v
			}
		}

		c, err := getClient()
		if err != nil {
			return err
		}

		i, err := c.CreateInvitation(cmd.Context(), req)
		if err != nil {
			return apiFailure("failed to send invitation", err)
		}

		return render(cmd.OutOrStdout(), i, func(w io.Writer) {
			fmt.Fprintln(w, "ID\tEMAIL\tROLE\tEXPIRES_AT")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", i.ID, i.Email, i.Role, i.ExpiresAt.Format("2006-01-02"))
		})
	},
}

var acceptInvitationCmd = &cobra.Command{
	Use:   "accept [invitation-id]",
	Short: "Accept an invitation and join its container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inbox, err := getInbox()
		if err != nil {
			return err
		}

		if err := inbox.Load(cmd.Context()); err != nil {
			return apiFailure("failed to load invitations", err)
		}

		r, err := inbox.Accept(cmd.Context(), args[0])
		if err != nil {
			return apiFailure("failed to accept invitation", err)
		}

		return render(cmd.OutOrStdout(), r, func(w io.Writer) {
			fmt.Fprintln(w, r.Message)
			if roles := inbox.Roles(); roles != nil {
				fmt.Fprintf(w, "Roles:\t%s\n", joinRoles(roles.AvailableRoles))
			}
		})
	},
}

var rejectInvitationCmd = &cobra.Command{
	Use:   "reject [invitation-id]",
	Short: "Decline an invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inbox, err := getInbox()
		if err != nil {
			return err
		}

		if err := inbox.Load(cmd.Context()); err != nil {
			return apiFailure("failed to load invitations", err)
		}

		if err := inbox.Reject(cmd.Context(), args[0]); err != nil {
			return apiFailure("failed to reject invitation", err)
		}

		cmd.Printf("Invitation %s rejected, %d pending\n", args[0], len(inbox.Invitations()))
		return nil
	},
}

func init() {
	sentInvitationsCmd.Flags().Uint64("page", 1, "Page number")
	sentInvitationsCmd.Flags().Uint64("size", 20, "Page size")

	createInvitationCmd.Flags().String("brokerage", "", "Brokerage ID to invite to")
	createInvitationCmd.Flags().String("project", "", "Project ID to invite to")
	createInvitationCmd.Flags().String("simulation", "", "Simulation ID to invite to")

	invitationsCmd.AddCommand(
		listInvitationsCmd,
		sentInvitationsCmd,
		createInvitationCmd,
		acceptInvitationCmd,
		rejectInvitationCmd,
	)

	rootCmd.AddCommand(invitationsCmd)
}

func renderInvitations(out io.Writer, views []*invitation.View) error {
	if views == nil {
		views = []*invitation.View{}
	}

	return render(out, views, func(w io.Writer) {
		fmt.Fprintln(w, "ID\tEMAIL\tROLE\tINVITED_BY\tEXPIRES")
		for _, v := range views {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", v.ID, v.Email, v.Role.DisplayName(), v.InviterName, v.ExpiryLabel)
		}
	})
}
