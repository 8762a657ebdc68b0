package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arodionov/timesheet/internal/session"
	"github.com/arodionov/timesheet/internal/utils"
)

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the active timer",
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
		if err := sess.Pause(); err != nil {
			return err
		}
		if err := store.Update(sess); err != nil {
			return err
		}

		fmt.Printf("Paused %s / %s at %s\n", sess.Project, sess.Activity, utils.FormatClock(sess.Elapsed()))
		return nil
	},
}
