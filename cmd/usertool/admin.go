package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin <user-id>",
	Short: "Allow a user to manage categories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAdmin(cmd, args[0], true)
	},
}

var revokeAdminCmd = &cobra.Command{
	Use:   "revoke-admin <user-id>",
	Short: "Remove every administrative permission from a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAdmin(cmd, args[0], false)
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <user-id>",
	Short: "Prevent a user from authenticating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUserID(args[0])
		if err != nil {
			return err
		}

		user, err := accounts.SetActive(id, false)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "user %d (%s) deactivated\n", user.ID, user.Username)
		return nil
	},
}

func setAdmin(cmd *cobra.Command, rawID string, admin bool) error {
	id, err := parseUserID(rawID)
	if err != nil {
		return err
	}

	user, err := accounts.SetAdmin(id, admin)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "user %d (%s) admin: %t\n", user.ID, user.Username, user.IsAdmin())
	return nil
}

func init() {
	rootCmd.AddCommand(grantAdminCmd)
	rootCmd.AddCommand(revokeAdminCmd)
	rootCmd.AddCommand(deactivateCmd)
}
