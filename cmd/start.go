package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arodionov/timesheet/internal/session"
	"github.com/arodionov/timesheet/internal/workbook"
)

var (
	startProject  string
	startActivity string
)

// startCmd begins a new timer session. Only one session may be active.
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a timer for a project and activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireWorkbook()
		if err != nil {
			return err
		}

		project := startProject
		if project == "" {
			project = cfg.DefaultProject
		}
		activity := startActivity
		if activity == "" {
			activity = cfg.DefaultActivity
		}
		if project == "" || activity == "" {
			return fmt.Errorf("both --project and --activity are required (or set defaults in config)")
		}

		ref, err := workbook.LoadReference(cfg.WorkbookPath, cfg.WorkbookSheets())
		if err != nil {
			return structureHint(err)
		}
		if !ref.Contains(project, activity) {
			return fmt.Errorf("pair (%s, %s) is not listed on the reference sheet; valid projects: %v", project, activity, ref.Projects)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		sess := session.New(project, activity)
		if err := store.Put(sess); err != nil {
			if errors.Is(err, session.ErrAlreadyActive) {
				return fmt.Errorf("a session is already active (stop or cancel it first)")
			}
			return err
		}

		fmt.Printf("Timer started for %s / %s at %s\n", project, activity, sess.StartedAt.Format(time.Kitchen))
		return nil
	},
}

func init() {
	startCmd.Flags().StringVarP(&startProject, "project", "p", "", "Project name")
	startCmd.Flags().StringVarP(&startActivity, "activity", "a", "", "Activity (work type)")
}
