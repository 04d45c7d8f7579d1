package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable/internal"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strp(v string) *string { return &v }

func TestInsertTeachersKeepsFirstAddress(t *testing.T) {
	db := openTemp(t)

	n, err := db.InsertTeachers([]internal.RosterEntry{
		{FullName: "Петров Иван Сергеевич", Email: "petrov.is@university.edu"},
		{FullName: "Щукин Юрий", Email: "schukin.ju@university.edu"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = db.InsertTeachers([]internal.RosterEntry{
		{FullName: "Петров Иван Сергеевич", Email: "other@university.edu"},
	})
	require.NoError(t, err)
	assert.Zero(t, n)

	teachers, err := db.ListTeachers()
	require.NoError(t, err)
	assert.Equal(t, []internal.RosterEntry{
		{FullName: "Петров Иван Сергеевич", Email: "petrov.is@university.edu"},
		{FullName: "Щукин Юрий", Email: "schukin.ju@university.edu"},
	}, teachers)
}

func TestUpsertGroupStreams(t *testing.T) {
	db := openTemp(t)

	require.NoError(t, db.UpsertGroupStreams([]internal.GroupStream{
		{Group: "ИП-17", Stream: "ИП1*"},
		{Group: "ИП-111", Stream: "ИП-111"},
	}))
	require.NoError(t, db.UpsertGroupStreams([]internal.GroupStream{
		{Group: "ИП-111", Stream: "ИП1**"},
	}))

	groups, err := db.ListGroupStreams()
	require.NoError(t, err)
	assert.Equal(t, []internal.GroupStream{
		{Group: "ИП-111", Stream: "ИП1**"},
		{Group: "ИП-17", Stream: "ИП1*"},
	}, groups)
}

func TestScheduleMetadataAndReset(t *testing.T) {
	db := openTemp(t)

	require.NoError(t, db.InsertSchedule([]internal.ScheduleRow{
		{GroupName: strp("ИП-111"), PersonName: strp("Петров Иван Сергеевич"), Subject: strp("Матан"), RawJSON: `{}`},
		{RawJSON: `{"Группа": null}`},
	}))
	n, err := db.CountSchedule()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	missing, err := db.GetMetadata("trace_id")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, db.SetMetadata("trace_id", "a"))
	require.NoError(t, db.SetMetadata("trace_id", "b"))
	value, err := db.GetMetadata("trace_id")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "b", *value)

	require.NoError(t, db.Reset())
	n, err = db.CountSchedule()
	require.NoError(t, err)
	assert.Zero(t, n)
	value, err = db.GetMetadata("trace_id")
	require.NoError(t, err)
	assert.Nil(t, value)
}
