package pipeline

import (
	"errors"

	"timetable/internal"
	"timetable/internal/config"
	"timetable/internal/fakedata"
	"timetable/internal/record"
)

// PersonSource supplies synthetic people and the headman pick.
type PersonSource interface {
	Person() fakedata.Person
	IntN(n int) int
}

type StudentSpec struct {
	Groups           []string
	Rule             StreamRule
	StudentsPerGroup int
	// Headman marks one random student per group.
	Headman bool
}

// GenerateStudents builds one sheet of synthetic students per group, in
// group order. Every student of a group shares the group's stream.
func GenerateStudents(spec StudentSpec, people PersonSource, synth ContactFunc) []internal.StudentSheet {
	rule := spec.Rule
	if rule == nil {
		rule = MaskRule{}
	}

	sheets := make([]internal.StudentSheet, 0, len(spec.Groups))
	for _, group := range spec.Groups {
		stream := rule.Stream(group)
		rows := make([]internal.StudentRow, 0, spec.StudentsPerGroup)
		for i := 1; i <= spec.StudentsPerGroup; i++ {
			p := people.Person()
			rows = append(rows, internal.StudentRow{
				No:         i,
				LastName:   p.LastName,
				FirstName:  p.FirstName,
				MiddleName: p.MiddleName,
				Stream:     stream,
				Group:      group,
				Email:      synth(p.LastName + " " + p.FirstName + " " + p.MiddleName),
			})
		}
		if spec.Headman && len(rows) > 0 {
			rows[people.IntN(len(rows))].Headman = true
		}
		sheets = append(sheets, internal.StudentSheet{Group: group, Stream: stream, Rows: rows})
	}
	return sheets
}

// StudentExporter renders export profiles into student workbooks.
type StudentExporter struct {
	People PersonSource
	Synth  ContactFunc
}

// Export writes the workbook described by p and returns the sheets it
// wrote. The schedule is only consulted when p takes groups from it.
func (e StudentExporter) Export(p config.ExportProfile, schedule []record.Record, groupField, outputPath string) ([]internal.StudentSheet, error) {
	rule, err := StreamRuleFromProfile(p.Stream)
	if err != nil {
		return nil, err
	}
	groups := ProfileGroups(p, schedule, groupField)
	if len(groups) == 0 {
		return nil, errors.New("profile selects no groups")
	}

	sheets := GenerateStudents(StudentSpec{
		Groups:           groups,
		Rule:             rule,
		StudentsPerGroup: p.StudentsPerGroup,
		Headman:          p.HeadmanColumn,
	}, e.People, e.Synth)
	if err := ExportStudentsToXLSX(sheets, p.HeadmanColumn, outputPath); err != nil {
		return nil, err
	}
	return sheets, nil
}
