package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"timetable/internal/record"
)

// ReadRecords loads a schedule export, picking the reader from the file
// extension: .json, .xlsx, .html or .htm.
func ReadRecords(path string) ([]record.Record, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	inputType := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	records, err := ParseRecords(inputType, blob)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func ParseRecords(inputType string, blob []byte) ([]record.Record, error) {
	switch inputType {
	case "json":
		return record.Decode(blob)
	case "xlsx":
		return parseXLSX(blob)
	case "html", "htm":
		return parseHTMLTable(string(blob))
	default:
		return nil, fmt.Errorf("unsupported input type: %s", inputType)
	}
}
