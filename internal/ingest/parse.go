// Package ingest turns a spreadsheet payload (raw xlsx bytes or a
// shareable Google Sheets link) into a validated weekly schedule.
// It depends on nothing else in the application.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/bekzodov/jadval-bot/internal/model"
)

var ErrNoRows = errors.New("spreadsheet has no data rows")

// synonyms maps each logical field to the header spellings seen in real
// timetables. Headers are trimmed and lower-cased before matching.
var synonyms = map[string][]string{
	"day":      {"kun", "day", "kuni", "день", "weekday"},
	"time":     {"vaqt", "soat", "time", "hours"},
	"subject":  {"fan", "fan/tadbir", "tadbir", "subject", "title", "nomi", "name"},
	"room":     {"xona", "room", "auditoriya", "auditorium"},
	"building": {"bino", "building"},
	"teacher":  {"o'qituvchi", "oqituvchi", "teacher", "instr", "professor"},
}

// Report describes one import for the admin who triggered it. Rows that
// never made it into the schedule are counted, not hidden.
type Report struct {
	ID      string // import id for log correlation
	Rows    int    // data rows seen
	Skipped int    // rows whose day could not be resolved
}

// Parse decodes the first sheet of an xlsx payload into a Week.
// The first row is the header row; cells in later rows are addressed by
// the column their header mapped to. Rows whose day cell resolves to no
// canonical day are skipped and counted in the report. The returned
// week always satisfies the model.Week invariants.
func Parse(data []byte) (model.Week, Report, error) {
	report := Report{ID: uuid.NewString()}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, report, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, report, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, report, ErrNoRows
	}

	cols := mapHeaders(rows[0])

	week := model.NewWeek()
	for _, row := range rows[1:] {
		report.Rows++
		day, ok := model.ResolveDay(cell(row, cols["day"]))
		if !ok {
			report.Skipped++
			continue
		}
		week[day] = append(week[day], model.Entry{
			Time:     cell(row, cols["time"]),
			Subject:  cell(row, cols["subject"]),
			Room:     cell(row, cols["room"]),
			Building: cell(row, cols["building"]),
			Teacher:  cell(row, cols["teacher"]),
		})
	}

	// Weekend keys exist only when rows targeted them.
	for _, day := range []string{"Shanba", "Yakshanba"} {
		if entries, ok := week[day]; ok && len(entries) == 0 {
			delete(week, day)
		}
	}

	if err := week.Validate(); err != nil {
		return nil, report, err
	}
	return week, report, nil
}

// mapHeaders resolves each logical field to a column index. A field
// without a matching header stays at -1; if no header matched "day",
// the first column is assumed to hold the day.
func mapHeaders(header []string) map[string]int {
	cols := map[string]int{
		"day": -1, "time": -1, "subject": -1,
		"room": -1, "building": -1, "teacher": -1,
	}
	for idx, h := range header {
		nh := strings.ToLower(strings.TrimSpace(h))
		if nh == "" {
			continue
		}
		for field, syns := range synonyms {
			if cols[field] != -1 {
				continue
			}
			for _, syn := range syns {
				if nh == syn || strings.Contains(nh, syn) {
					cols[field] = idx
					break
				}
			}
		}
	}
	if cols["day"] == -1 && len(header) > 0 {
		cols["day"] = 0
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
