package cmd

import (
	"fmt"

	"github.com/arodionov/timesheet/internal/config"
	"github.com/arodionov/timesheet/internal/session"
	"github.com/arodionov/timesheet/internal/workbook"
)

func openStore() (*session.Store, error) {
	dir, err := session.DefaultDir()
	if err != nil {
		return nil, err
	}
	return session.OpenStore(dir)
}

// requireWorkbook loads config and ensures a workbook path is set.
func requireWorkbook() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if cfg.WorkbookPath == "" {
		return cfg, fmt.Errorf("no workbook configured: run `timesheet file set <path>` or create one with `timesheet init <path> --use`")
	}
	return cfg, nil
}

// structureHint wraps workbook layout errors with the remediation path.
func structureHint(err error) error {
	if workbook.IsStructureError(err) {
		return fmt.Errorf("%w\nregenerate a valid template with `timesheet init <path>`", err)
	}
	return err
}
