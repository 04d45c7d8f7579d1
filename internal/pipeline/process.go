package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"timetable/internal"
	"timetable/internal/config"
	"timetable/internal/record"
	"timetable/internal/storage"
)

// Output file names written by Run into its output directory.
const (
	ScheduleFile = "schedule.json"
	RosterFile   = "roster.json"
	StudentsFile = "students.xlsx"
	SeedFile     = "seed.db"
)

type ProcessingService struct {
	cfg    config.Config
	logger *zap.Logger
	synth  ContactFunc
	people PersonSource
	order  Order
	rule   StreamRule
}

func NewProcessingService(cfg config.Config, logger *zap.Logger, synth ContactFunc, people PersonSource) (*ProcessingService, error) {
	order, err := ParseOrder(cfg.RosterOrder)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProcessingService{
		cfg:    cfg,
		logger: logger,
		synth:  synth,
		people: people,
		order:  order,
		rule:   MaskRule{},
	}, nil
}

type SeedCounts struct {
	Teachers int
	Groups   int
	Schedule int
}

// ExportSeed writes the deduplicated schedule, its roster and its group
// streams into a fresh seed database at path. Existing rows are replaced.
func (s *ProcessingService) ExportSeed(path, traceID string, unique []record.Record) (SeedCounts, error) {
	roster := BuildRoster(unique, s.cfg.PersonField, s.synth)
	groups := GroupStreams(DistinctGroups(unique, s.cfg.GroupField), s.rule)
	return s.writeSeed(path, traceID, unique, roster.Entries(s.order), groups)
}

func (s *ProcessingService) writeSeed(path, traceID string, unique []record.Record, teachers []internal.RosterEntry, groups []internal.GroupStream) (SeedCounts, error) {
	rows, err := ScheduleRows(unique, s.cfg.GroupField, s.cfg.PersonField, s.cfg.SubjectField)
	if err != nil {
		return SeedCounts{}, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return SeedCounts{}, err
	}
	defer db.Close()

	if err := db.Reset(); err != nil {
		return SeedCounts{}, err
	}
	inserted, err := db.InsertTeachers(teachers)
	if err != nil {
		return SeedCounts{}, fmt.Errorf("insert teachers: %w", err)
	}
	if err := db.UpsertGroupStreams(groups); err != nil {
		return SeedCounts{}, fmt.Errorf("insert group streams: %w", err)
	}
	if err := db.InsertSchedule(rows); err != nil {
		return SeedCounts{}, fmt.Errorf("insert schedule: %w", err)
	}
	if err := db.SetMetadata("trace_id", traceID); err != nil {
		return SeedCounts{}, err
	}
	if err := db.SetMetadata("generated_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return SeedCounts{}, err
	}

	return SeedCounts{Teachers: inserted, Groups: len(groups), Schedule: len(rows)}, nil
}

// Run reads input, deduplicates it and writes every artifact into outDir:
// the schedule, the roster, a student workbook and the seed database.
func (s *ProcessingService) Run(input, outDir string, keys KeySpec) (internal.RunSummary, error) {
	start := time.Now()
	traceID := uuid.NewString()
	log := s.logger.With(zap.String("trace_id", traceID))

	records, err := ReadRecords(input)
	if err != nil {
		return internal.RunSummary{}, err
	}
	res := Dedupe(records, keys.Extract)
	log.Info("schedule deduplicated",
		zap.String("input", input),
		zap.String("keys", keys.String()),
		zap.Int("records", len(records)),
		zap.Int("removed", res.Removed),
	)
	if err := WriteRecordsJSON(res.Unique, filepath.Join(outDir, ScheduleFile)); err != nil {
		return internal.RunSummary{}, err
	}

	roster := BuildRoster(res.Unique, s.cfg.PersonField, s.synth)
	entries := roster.Entries(s.order)
	if err := WriteRosterJSON(entries, filepath.Join(outDir, RosterFile)); err != nil {
		return internal.RunSummary{}, err
	}

	groups := GroupStreams(DistinctGroups(res.Unique, s.cfg.GroupField), s.rule)
	if len(groups) > 0 {
		sheets := GenerateStudents(StudentSpec{
			Groups:           groupNames(groups),
			Rule:             s.rule,
			StudentsPerGroup: s.cfg.StudentsPerGroup,
			Headman:          s.cfg.HeadmanColumn,
		}, s.people, s.synth)
		if err := ExportStudentsToXLSX(sheets, s.cfg.HeadmanColumn, filepath.Join(outDir, StudentsFile)); err != nil {
			return internal.RunSummary{}, err
		}
	} else {
		log.Warn("no groups in schedule, student workbook skipped", zap.String("group_field", s.cfg.GroupField))
	}

	counts, err := s.writeSeed(filepath.Join(outDir, SeedFile), traceID, res.Unique, entries, groups)
	if err != nil {
		return internal.RunSummary{}, err
	}

	summary := internal.RunSummary{
		TraceID:   traceID,
		Input:     input,
		Records:   len(records),
		Unique:    len(res.Unique),
		Removed:   res.Removed,
		Persons:   roster.Len(),
		Groups:    len(groups),
		Streams:   countStreams(groups),
		OutputDir: outDir,
	}
	log.Info("run complete",
		zap.Int("persons", summary.Persons),
		zap.Int("groups", summary.Groups),
		zap.Int("streams", summary.Streams),
		zap.Int("teachers_stored", counts.Teachers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return summary, nil
}

// ScheduleRows flattens records for storage, keeping each record's JSON
// form alongside the group, person and subject columns.
func ScheduleRows(records []record.Record, groupField, personField, subjectField string) ([]internal.ScheduleRow, error) {
	out := make([]internal.ScheduleRow, 0, len(records))
	for i, r := range records {
		raw, err := r.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, internal.ScheduleRow{
			GroupName:  strPtr(r, groupField),
			PersonName: strPtr(r, personField),
			Subject:    strPtr(r, subjectField),
			RawJSON:    string(raw),
		})
	}
	return out, nil
}

func strPtr(r record.Record, field string) *string {
	s, ok := r.Str(field)
	if !ok {
		return nil
	}
	return &s
}

func groupNames(groups []internal.GroupStream) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Group)
	}
	return out
}

func countStreams(groups []internal.GroupStream) int {
	seen := map[string]struct{}{}
	for _, g := range groups {
		seen[g.Stream] = struct{}{}
	}
	return len(seen)
}
