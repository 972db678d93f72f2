package main

import (
	"fmt"

	"blogapi/cmd/internal/contract"

	"github.com/spf13/cobra"
)

var createReq contract.CreateUserRequest

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := accounts.CreateUser(&createReq)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s)\n", user.ID, user.Username)
		return nil
	},
}

func init() {
	flags := createCmd.Flags()
	flags.StringVar(&createReq.Username, "username", "", "Unique username")
	flags.StringVar(&createReq.Email, "email", "", "Email address")
	flags.StringVar(&createReq.FirstName, "first-name", "", "First name")
	flags.StringVar(&createReq.LastName, "last-name", "", "Last name")
	flags.BoolVar(&createReq.Admin, "admin", false, "Grant administrative permissions")
	_ = createCmd.MarkFlagRequired("username")
	_ = createCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(createCmd)
}
