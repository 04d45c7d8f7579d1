package internal

// RosterEntry is the serialized form consumed by the StudentTracker
// teacher import.
type RosterEntry struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type GroupStream struct {
	Group  string
	Stream string
}

type StudentRow struct {
	No         int
	LastName   string
	FirstName  string
	MiddleName string
	Stream     string
	Group      string
	Email      string
	Headman    bool
}

type StudentSheet struct {
	Group  string
	Stream string
	Rows   []StudentRow
}

// ScheduleRow is a schedule record flattened for the seed database. Nil
// fields were absent or not strings in the source record.
type ScheduleRow struct {
	GroupName  *string
	PersonName *string
	Subject    *string
	RawJSON    string
}

type RunSummary struct {
	TraceID   string
	Input     string
	Records   int
	Unique    int
	Removed   int
	Persons   int
	Groups    int
	Streams   int
	OutputDir string
}
