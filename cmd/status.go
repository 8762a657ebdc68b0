package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arodionov/timesheet/internal/session"
	"github.com/arodionov/timesheet/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		sess, err := store.Active()
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				fmt.Println("No active session")
				return nil
			}
			return err
		}

		fmt.Printf("%s / %s\n", sess.Project, sess.Activity)
		fmt.Printf("State:   %s\n", sess.State)
		fmt.Printf("Elapsed: %s\n", utils.FormatClock(sess.Elapsed()))
		fmt.Printf("Started: %s\n", sess.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		return nil
	},
}
