package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"timetable/internal"
	"timetable/internal/record"
	"timetable/internal/util"
)

var studentHeaders = []string{"№", "Фамилия", "Имя", "Отчество", "Поток", "Группа", "Email"}

const headmanHeader = "СТ"

// ExportStudentsToXLSX writes one worksheet per group with a bold header
// row and auto-fitted columns.
func ExportStudentsToXLSX(sheets []internal.StudentSheet, headman bool, outputPath string) error {
	if len(sheets) == 0 {
		return errors.New("no groups to export")
	}

	f := excelize.NewFile()
	defer f.Close()
	defaultSheet := f.GetSheetName(0)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	headers := append([]string{}, studentHeaders...)
	if headman {
		headers = append(headers, headmanHeader)
	}

	taken := map[string]struct{}{}
	for i, sheet := range sheets {
		name := util.UniqueSheetName(util.SheetName(sheet.Group), taken)
		if i == 0 {
			// The workbook starts with one empty sheet; reuse it for the first group.
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := writeStudentSheet(f, name, headers, sheet.Rows, headman, bold); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func writeStudentSheet(f *excelize.File, sheet string, headers []string, rows []internal.StudentRow, headman bool, boldStyle int) error {
	columns := make([][]string, len(headers))
	for c, h := range headers {
		columns[c] = []string{h}
	}

	headerRow := make([]any, len(headers))
	for c, h := range headers {
		headerRow[c] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, boldStyle); err != nil {
		return err
	}

	for i, row := range rows {
		values := []any{row.No, row.LastName, row.FirstName, row.MiddleName, row.Stream, row.Group, row.Email}
		if headman {
			mark := ""
			if row.Headman {
				mark = "+"
			}
			values = append(values, mark)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		for c, v := range values {
			columns[c] = append(columns[c], cellText(v))
		}
	}

	for c, values := range columns {
		col, _ := excelize.ColumnNumberToName(c + 1)
		if err := f.SetColWidth(sheet, col, col, util.ColumnWidth(values)); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecordsJSON writes records as an indented JSON array.
func WriteRecordsJSON(records []record.Record, outputPath string) error {
	var buf bytes.Buffer
	if err := record.Encode(&buf, records); err != nil {
		return err
	}
	return writeFile(outputPath, buf.Bytes())
}

// WriteRosterJSON writes [{"full_name": ..., "email": ...}].
func WriteRosterJSON(entries []internal.RosterEntry, outputPath string) error {
	if entries == nil {
		entries = []internal.RosterEntry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return writeFile(outputPath, buf.Bytes())
}

func writeFile(outputPath string, blob []byte) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, blob, 0o644)
}

func cellText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
