package workbook

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheets names the two sheets a timesheet workbook must contain.
type Sheets struct {
	Reference string
	Log       string
}

func DefaultSheets() Sheets {
	return Sheets{Reference: "Reference", Log: "Time Log"}
}

// StructureError reports a workbook whose layout does not match the
// expected template. It is user-correctable: regenerate with `timesheet init`.
type StructureError struct {
	Sheet  string
	Reason string
	Found  []string
}

func (e *StructureError) Error() string {
	if len(e.Found) > 0 {
		return fmt.Sprintf("workbook sheet %q: %s (found sheets: %s)", e.Sheet, e.Reason, strings.Join(e.Found, ", "))
	}
	return fmt.Sprintf("workbook sheet %q: %s", e.Sheet, e.Reason)
}

// Reference holds the valid selection options read from the reference sheet.
// Projects and activities are independent columns, not pair rows.
type Reference struct {
	Projects   []string
	Activities []string
}

func (r Reference) Empty() bool {
	return len(r.Projects) == 0 || len(r.Activities) == 0
}

// Contains reports whether the pair is a valid selection.
func (r Reference) Contains(project, activity string) bool {
	return contains(r.Projects, project) && contains(r.Activities, activity)
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}

// Entry is one completed timer session as recorded on the log sheet.
type Entry struct {
	Date     time.Time     `json:"date"`
	Project  string        `json:"project"`
	Activity string        `json:"activity"`
	Duration time.Duration `json:"duration"`
}

const (
	dateFormat     = "yyyy-mm-dd"
	durationFormat = "[h]:mm:ss"
)

func open(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("workbook not found: %w", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return f, nil
}

func requireSheet(f *excelize.File, name string) error {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return err
	}
	if idx < 0 {
		return &StructureError{Sheet: name, Reason: "sheet is missing", Found: f.GetSheetList()}
	}
	return nil
}

// LoadReference reads the project and activity columns from the reference
// sheet. The first row is treated as a header, blanks are dropped and
// duplicates collapsed while preserving order. A workbook whose reference
// sheet yields no projects or no activities is considered malformed.
func LoadReference(path string, sheets Sheets) (Reference, error) {
	f, err := open(path)
	if err != nil {
		return Reference{}, err
	}
	defer f.Close()

	if err := requireSheet(f, sheets.Reference); err != nil {
		return Reference{}, err
	}

	rows, err := f.GetRows(sheets.Reference)
	if err != nil {
		return Reference{}, fmt.Errorf("read reference sheet: %w", err)
	}

	var projects, activities []string
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) > 0 {
			projects = append(projects, row[0])
		}
		if len(row) > 1 {
			activities = append(activities, row[1])
		}
	}

	ref := Reference{Projects: normalise(projects), Activities: normalise(activities)}
	if ref.Empty() {
		return Reference{}, &StructureError{
			Sheet:  sheets.Reference,
			Reason: "the project and activity columns must both be filled in below the header row",
		}
	}
	return ref, nil
}

// normalise trims, drops empty values and removes duplicates preserving order.
func normalise(values []string) []string {
	var out []string
	for _, v := range values {
		text := strings.TrimSpace(v)
		if text == "" || contains(out, text) {
			continue
		}
		out = append(out, text)
	}
	return out
}

// AppendEntry appends [date, project, activity, duration] as the next row of
// the log sheet and saves the workbook. The duration cell is written as an
// Excel time serial so spreadsheet formulas can sum it. When ref is non-nil
// the (project, activity) pair must be present in it.
func AppendEntry(path string, sheets Sheets, e Entry, ref *Reference) error {
	if e.Duration <= 0 {
		return fmt.Errorf("refusing to log a zero-length session")
	}
	if ref != nil && !ref.Contains(e.Project, e.Activity) {
		return fmt.Errorf("pair (%s, %s) is not listed on sheet %q", e.Project, e.Activity, sheets.Reference)
	}

	f, err := open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := requireSheet(f, sheets.Log); err != nil {
		return err
	}

	rows, err := f.GetRows(sheets.Log)
	if err != nil {
		return fmt.Errorf("read log sheet: %w", err)
	}
	rowNum := len(rows) + 1

	dateCell, _ := excelize.CoordinatesToCellName(1, rowNum)
	projCell, _ := excelize.CoordinatesToCellName(2, rowNum)
	actCell, _ := excelize.CoordinatesToCellName(3, rowNum)
	durCell, _ := excelize.CoordinatesToCellName(4, rowNum)

	day := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
	if err := f.SetCellValue(sheets.Log, dateCell, day); err != nil {
		return err
	}
	if err := f.SetCellValue(sheets.Log, projCell, e.Project); err != nil {
		return err
	}
	if err := f.SetCellValue(sheets.Log, actCell, e.Activity); err != nil {
		return err
	}
	// Excel stores times as fractions of a day.
	secs := e.Duration.Round(time.Second).Seconds()
	if err := f.SetCellValue(sheets.Log, durCell, secs/86400.0); err != nil {
		return err
	}

	dateFmt := dateFormat
	if style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt}); err == nil {
		_ = f.SetCellStyle(sheets.Log, dateCell, dateCell, style)
	}
	durFmt := durationFormat
	if style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &durFmt}); err == nil {
		_ = f.SetCellStyle(sheets.Log, durCell, durCell, style)
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// Entries reads back the rows of the log sheet. Rows that cannot be parsed
// (stray notes, blank lines) are skipped rather than failing the whole read.
func Entries(path string, sheets Sheets) ([]Entry, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := requireSheet(f, sheets.Log); err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheets.Log)
	if err != nil {
		return nil, fmt.Errorf("read log sheet: %w", err)
	}

	var entries []Entry
	for i, row := range rows {
		if i == 0 || len(row) < 4 {
			continue
		}
		date, err := parseDate(row[0])
		if err != nil {
			continue
		}
		dur, err := parseClock(row[3])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Date:     date,
			Project:  strings.TrimSpace(row[1]),
			Activity: strings.TrimSpace(row[2]),
			Duration: dur,
		})
	}
	return entries, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "1/2/06", "01-02-06", "2006/01/02", "02.01.2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// parseClock parses "H:MM:SS" (hours unbounded) as written by the duration
// number format.
func parseClock(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("unrecognised duration %q", s)
	}
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		return 0, fmt.Errorf("unrecognised duration %q", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

// Verify checks that the workbook has the expected structure without
// modifying it. Used by `file set` before a path is saved to config.
func Verify(path string, sheets Sheets) error {
	f, err := open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := requireSheet(f, sheets.Reference); err != nil {
		return err
	}
	return requireSheet(f, sheets.Log)
}

// CreateTemplate writes a fresh workbook with both required sheets and their
// header rows. It refuses to overwrite an existing file unless force is set.
func CreateTemplate(path string, sheets Sheets, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheets.Reference); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheets.Log); err != nil {
		return err
	}

	refHeader := []interface{}{"Project", "Activity"}
	if err := f.SetSheetRow(sheets.Reference, "A1", &refHeader); err != nil {
		return err
	}
	logHeader := []interface{}{"Date", "Project", "Activity", "Duration"}
	if err := f.SetSheetRow(sheets.Log, "A1", &logHeader); err != nil {
		return err
	}

	_ = f.SetColWidth(sheets.Reference, "A", "B", 24)
	_ = f.SetColWidth(sheets.Log, "A", "D", 16)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}

// IsStructureError reports whether err is a workbook layout problem the user
// can fix by regenerating the template.
func IsStructureError(err error) bool {
	var se *StructureError
	return errors.As(err, &se)
}
