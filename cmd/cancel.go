package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arodionov/timesheet/internal/session"
	"github.com/arodionov/timesheet/internal/utils"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the active timer without logging it",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		sess, err := store.Active()
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				return fmt.Errorf("no active session")
			}
			return err
		}
		if err := store.Delete(sess.ID); err != nil {
			return err
		}

		fmt.Printf("Discarded %s / %s (%s untracked)\n", sess.Project, sess.Activity, utils.FormatClock(sess.Elapsed()))
		return nil
	},
}
