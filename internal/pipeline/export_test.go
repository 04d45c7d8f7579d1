package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"timetable/internal"
	"timetable/internal/config"
	"timetable/internal/fakedata"
	"timetable/internal/record"
)

func TestGenerateStudents(t *testing.T) {
	spec := StudentSpec{
		Groups:           []string{"ИП-111", "ИП-17"},
		StudentsPerGroup: 5,
		Headman:          true,
	}
	sheets := GenerateStudents(spec, fakedata.New(42), SharedContact("s@university.edu"))
	require.Len(t, sheets, 2)

	assert.Equal(t, "ИП1**", sheets[0].Stream)
	assert.Equal(t, "ИП1*", sheets[1].Stream)
	for _, sheet := range sheets {
		require.Len(t, sheet.Rows, 5)
		headmen := 0
		for i, row := range sheet.Rows {
			assert.Equal(t, i+1, row.No)
			assert.Equal(t, sheet.Group, row.Group)
			assert.Equal(t, sheet.Stream, row.Stream)
			assert.NotEmpty(t, row.LastName)
			assert.Equal(t, "s@university.edu", row.Email)
			if row.Headman {
				headmen++
			}
		}
		assert.Equal(t, 1, headmen, sheet.Group)
	}

	again := GenerateStudents(spec, fakedata.New(42), SharedContact("s@university.edu"))
	assert.Equal(t, sheets, again, "same seed, same students")

	spec.Headman = false
	for _, sheet := range GenerateStudents(spec, fakedata.New(42), SharedContact("")) {
		for _, row := range sheet.Rows {
			assert.False(t, row.Headman)
		}
	}
}

func TestProfileGroups(t *testing.T) {
	schedule := []record.Record{
		record.FromPairs("Группа", "ИП-212"),
		record.FromPairs("Группа", "ИП-011"),
	}
	p := config.ExportProfile{
		Groups:             []string{" ИП-011 ", "", "ИП-999"},
		GroupRanges:        []config.GroupRange{{Format: "ИП-01%d", From: 1, To: 3}},
		GroupsFromSchedule: true,
	}
	assert.Equal(t, []string{"ИП-011", "ИП-999", "ИП-012", "ИП-013", "ИП-212"}, ProfileGroups(p, schedule, "Группа"))

	p.GroupsFromSchedule = false
	assert.Equal(t, []string{"ИП-011", "ИП-999", "ИП-012", "ИП-013"}, ProfileGroups(p, schedule, "Группа"))
}

func TestExportStudentsToXLSX(t *testing.T) {
	sheets := GenerateStudents(StudentSpec{
		Groups:           []string{"ИП-111", "ИП/112"},
		StudentsPerGroup: 3,
		Headman:          true,
	}, fakedata.New(7), SharedContact("s@university.edu"))

	out := filepath.Join(t.TempDir(), "nested", "students.xlsx")
	require.NoError(t, ExportStudentsToXLSX(sheets, true, out))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"ИП-111", "ИП_112"}, f.GetSheetList())

	rows, err := f.GetRows("ИП-111")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"№", "Фамилия", "Имя", "Отчество", "Поток", "Группа", "Email", "СТ"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "ИП1**", rows[1][4])
	assert.Equal(t, "ИП-111", rows[1][5])

	marks := 0
	for _, row := range rows[1:] {
		if len(row) == 8 && row[7] == "+" {
			marks++
		}
	}
	assert.Equal(t, 1, marks)

	styleID, err := f.GetCellStyle("ИП-111", "C1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	width, err := f.GetColWidth("ИП-111", "G")
	require.NoError(t, err)
	assert.InDelta(t, float64(len("s@university.edu")+2)*1.2, width, 0.01)
}

func TestExportStudentsToXLSXWithoutHeadman(t *testing.T) {
	sheets := []internal.StudentSheet{{Group: "ИП-111", Stream: "ИП1**", Rows: []internal.StudentRow{
		{No: 1, LastName: "Петров", FirstName: "Иван", MiddleName: "Сергеевич", Stream: "ИП1**", Group: "ИП-111", Email: "petrov.is@university.edu", Headman: true},
	}}}
	out := filepath.Join(t.TempDir(), "students.xlsx")
	require.NoError(t, ExportStudentsToXLSX(sheets, false, out))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("ИП-111")
	require.NoError(t, err)
	assert.Len(t, rows[0], 7)
	assert.Equal(t, []string{"1", "Петров", "Иван", "Сергеевич", "ИП1**", "ИП-111", "petrov.is@university.edu"}, rows[1])

	assert.Error(t, ExportStudentsToXLSX(nil, false, out))
}

func TestStudentExporter(t *testing.T) {
	people := fakedata.New(3)
	exporter := StudentExporter{People: people, Synth: SharedContact("s@university.edu")}
	out := filepath.Join(t.TempDir(), "ip.xlsx")

	p := config.ExportProfile{
		StudentsPerGroup: 2,
		GroupRanges:      []config.GroupRange{{Format: "ИП-01%d", From: 1, To: 2}},
		Stream: config.StreamProfile{
			Mode:     "prefix",
			Prefixes: []config.StreamPrefix{{Prefix: "ИП-0", Stream: "ИП-0**"}},
		},
	}
	sheets, err := exporter.Export(p, nil, "Группа", out)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, "ИП-0**", sheets[1].Stream)

	_, err = os.Stat(out)
	require.NoError(t, err)

	_, err = exporter.Export(config.ExportProfile{StudentsPerGroup: 2}, nil, "Группа", out)
	assert.ErrorContains(t, err, "no groups")
}

func TestWriteJSONOutputs(t *testing.T) {
	dir := t.TempDir()

	records := []record.Record{record.FromPairs("Группа", "ИП-111", "Дисциплина", "Матан & <Физика>")}
	schedule := filepath.Join(dir, "out", "schedule.json")
	require.NoError(t, WriteRecordsJSON(records, schedule))
	blob, err := os.ReadFile(schedule)
	require.NoError(t, err)
	assert.True(t, strings.Index(string(blob), "Группа") < strings.Index(string(blob), "Дисциплина"))
	assert.Contains(t, string(blob), "Матан & <Физика>")
	back, err := record.Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, records[0].Fields(), back[0].Fields())

	roster := filepath.Join(dir, "roster.json")
	require.NoError(t, WriteRosterJSON(nil, roster))
	blob, err = os.ReadFile(roster)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(blob))

	entries := []internal.RosterEntry{{FullName: "Петров Иван Сергеевич", Email: "petrov.is@university.edu"}}
	require.NoError(t, WriteRosterJSON(entries, roster))
	blob, err = os.ReadFile(roster)
	require.NoError(t, err)
	var got []map[string]string
	require.NoError(t, json.Unmarshal(blob, &got))
	assert.Equal(t, []map[string]string{{"full_name": "Петров Иван Сергеевич", "email": "petrov.is@university.edu"}}, got)
}
