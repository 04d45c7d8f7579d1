package pipeline

import (
	"bytes"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"timetable/internal/record"
	"timetable/internal/util"
)

var errNoTable = errors.New("no table with a header row and data rows")

// parseXLSX reads the first sheet that has data. Its first non-empty row
// names the fields; blank header cells drop their column.
func parseXLSX(content []byte) ([]record.Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		records, ok := rowsToRecords(rows)
		if ok {
			return records, nil
		}
	}
	return nil, errNoTable
}

func parseHTMLTable(html string) ([]record.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var (
		out   []record.Record
		found bool
	)
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		var rows [][]string
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := []string{}
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, util.NormalizeSpaces(cell.Text()))
			})
			rows = append(rows, cells)
		})
		out, found = rowsToRecords(rows)
		return !found
	})
	if !found {
		return nil, errNoTable
	}
	return out, nil
}

// rowsToRecords treats the first non-empty row as the header. Rows with no
// text are skipped; short rows get empty strings for the missing cells.
func rowsToRecords(rows [][]string) ([]record.Record, bool) {
	headerAt := -1
	for i, row := range rows {
		if !blankRow(row) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, false
	}

	header := normalizeCells(rows[headerAt])
	out := []record.Record{}
	for _, row := range rows[headerAt+1:] {
		if blankRow(row) {
			continue
		}
		fields := make([]record.Field, 0, len(header))
		for c, name := range header {
			if name == "" {
				continue
			}
			value := ""
			if c < len(row) {
				value = strings.TrimSpace(row[c])
			}
			fields = append(fields, record.Field{Name: name, Value: record.String(value)})
		}
		out = append(out, record.New(fields...))
	}
	return out, len(out) > 0
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func normalizeCells(row []string) []string {
	out := make([]string, 0, len(row))
	for _, c := range row {
		out = append(out, util.NormalizeSpaces(c))
	}
	return out
}
