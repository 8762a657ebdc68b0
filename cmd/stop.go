package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arodionov/timesheet/internal/notify"
	"github.com/arodionov/timesheet/internal/session"
	"github.com/arodionov/timesheet/internal/utils"
	"github.com/arodionov/timesheet/internal/workbook"
)

var stopDiscardShort time.Duration

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the active timer and log it to the workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireWorkbook()
		if err != nil {
			return err
		}

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

		total, err := sess.Stop()
		if err != nil {
			return err
		}
		if total.Round(time.Second) <= 0 || total < stopDiscardShort {
			if err := store.Delete(sess.ID); err != nil {
				return err
			}
			fmt.Printf("Discarded %s session (%s)\n", sess.Project, utils.FormatClock(total))
			return nil
		}

		sheets := cfg.WorkbookSheets()
		ref, err := workbook.LoadReference(cfg.WorkbookPath, sheets)
		if err != nil {
			return structureHint(err)
		}

		entry := workbook.Entry{
			Date:     time.Now().In(cfg.Location()),
			Project:  sess.Project,
			Activity: sess.Activity,
			Duration: total,
		}
		// On append failure the session is parked as paused instead of being
		// deleted, so the tracked time survives and stop can be retried.
		if err := workbook.AppendEntry(cfg.WorkbookPath, sheets, entry, &ref); err != nil {
			sess.State = session.StatePaused
			_ = store.Update(sess)
			return structureHint(err)
		}
		if err := store.Delete(sess.ID); err != nil {
			return err
		}

		msg := notify.FormatSaved(sess.Project, sess.Activity, total)
		fmt.Println(msg)
		if cfg.Notifications {
			_ = notify.Done(msg)
		}
		return nil
	},
}

func init() {
	stopCmd.Flags().DurationVar(&stopDiscardShort, "discard-short", 0, "Discard instead of logging sessions shorter than this (e.g. 30s)")
}
