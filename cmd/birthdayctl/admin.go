package main

import (
	"fmt"

	"birthday_notification_bot/internal/domain/channel"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage bot administrators",
}

var adminAddCmd = &cobra.Command{
	Use:   "add <user_id>",
	Short: "Register a Telegram user as admin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := adminService.SeedAdmins(cmd.Context(), args); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Admin %s added.\n", args[0])
		return nil
	},
}

var adminRemoveCmd = &cobra.Command{
	Use:   "remove <user_id>",
	Short: "Revoke admin rights",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := adminService.RemoveAdmin(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Admin %s removed.\n", args[0])
		return nil
	},
}

var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Manage channel bindings",
}

var channelSetCmd = &cobra.Command{
	Use:   "set <KEY> <destination_id>",
	Short: "Bind BIRTHDAY_CHANNEL or LOGS_CHANNEL to a chat ID",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := channel.ParseKey(args[0])
		if err != nil {
			return err
		}
		if err := adminService.BindChannel(cmd.Context(), key, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s.\n", key, args[1])
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminAddCmd, adminRemoveCmd)
	channelCmd.AddCommand(channelSetCmd)
}
