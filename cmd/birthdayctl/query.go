package main

import (
	"fmt"
	"io"
	"time"

	"birthday_notification_bot/internal/domain/birthday"

	"github.com/spf13/cobra"
)

var nextCount int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all birthdays ordered by date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := birthdayService.List(cmd.Context())
		if err != nil {
			return err
		}
		printBirthdays(cmd.OutOrStdout(), entries)
		return nil
	},
}

var nextCmd = &cobra.Command{
	Use:     "next",
	Short:   "Show the next upcoming birthdays",
	Args:    cobra.NoArgs,
	PreRunE: validateCount,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := birthdayService.Next(cmd.Context(), time.Now(), nextCount)
		if err != nil {
			return err
		}
		printBirthdays(cmd.OutOrStdout(), entries)
		return nil
	},
}

func validateCount(cmd *cobra.Command, args []string) error {
	if nextCount < 0 {
		return fmt.Errorf("--count must not be negative, got %d", nextCount)
	}
	return nil
}

func printBirthdays(w io.Writer, entries []*birthday.Birthday) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No birthdays found.")
		return
	}
	for _, b := range entries {
		fmt.Fprintf(w, "%s  %-20s %s\n", b.Date(), b.DisplayName, b.ExternalID)
	}
}

func init() {
	nextCmd.Flags().IntVar(&nextCount, "count", 0, "number of entries (default from BIRTHDAY_NEXT_COUNT)")
}
