package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExportProfile describes one student workbook: which groups get a sheet,
// how streams are derived and how many students each sheet holds.
//
//	output: students_IP_groups.xlsx
//	students_per_group: 20
//	headman_column: true
//	group_ranges:
//	  - {format: "ИП-01%d", from: 1, to: 7}
//	  - {format: "ИП-11%d", from: 1, to: 7}
//	stream:
//	  mode: prefix
//	  prefixes:
//	    - {prefix: "ИП-0", stream: "ИП-0**"}
//	  fallback: mask
type ExportProfile struct {
	Output             string        `yaml:"output"`
	StudentsPerGroup   int           `yaml:"students_per_group"`
	HeadmanColumn      bool          `yaml:"headman_column"`
	Groups             []string      `yaml:"groups"`
	GroupRanges        []GroupRange  `yaml:"group_ranges"`
	GroupsFromSchedule bool          `yaml:"groups_from_schedule"`
	Stream             StreamProfile `yaml:"stream"`
}

type GroupRange struct {
	Format string `yaml:"format"`
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
}

type StreamProfile struct {
	// Mode is "mask" (default), "prefix" or "identity".
	Mode     string         `yaml:"mode"`
	Prefixes []StreamPrefix `yaml:"prefixes"`
	// Fallback applies to groups no prefix matched: "mask" or "identity".
	Fallback string `yaml:"fallback"`
}

type StreamPrefix struct {
	Prefix string `yaml:"prefix"`
	Stream string `yaml:"stream"`
}

// DefaultProfile mirrors the full export: every group of the schedule,
// masked streams, no headman column.
func (c Config) DefaultProfile() ExportProfile {
	return ExportProfile{
		StudentsPerGroup:   c.StudentsPerGroup,
		HeadmanColumn:      c.HeadmanColumn,
		GroupsFromSchedule: true,
		Stream:             StreamProfile{Mode: "mask"},
	}
}

// LoadProfile reads a YAML profile. Unset fields take their values from
// the environment config.
func (c Config) LoadProfile(path string) (ExportProfile, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return ExportProfile{}, err
	}

	var p ExportProfile
	if err := yaml.Unmarshal(blob, &p); err != nil {
		return ExportProfile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if p.StudentsPerGroup == 0 {
		p.StudentsPerGroup = c.StudentsPerGroup
	}
	if err := p.Validate(); err != nil {
		return ExportProfile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

func (p ExportProfile) Validate() error {
	if p.StudentsPerGroup <= 0 {
		return fmt.Errorf("students_per_group must be positive, got %d", p.StudentsPerGroup)
	}
	for _, r := range p.GroupRanges {
		if !strings.Contains(r.Format, "%d") {
			return fmt.Errorf("group range format %q has no %%d verb", r.Format)
		}
		if r.To < r.From {
			return fmt.Errorf("group range %q: to %d < from %d", r.Format, r.To, r.From)
		}
	}
	switch strings.ToLower(p.Stream.Mode) {
	case "", "mask", "identity":
	case "prefix":
		if len(p.Stream.Prefixes) == 0 {
			return fmt.Errorf("stream mode prefix needs at least one prefix")
		}
	default:
		return fmt.Errorf("unsupported stream mode: %s", p.Stream.Mode)
	}
	switch strings.ToLower(p.Stream.Fallback) {
	case "", "mask", "identity":
	default:
		return fmt.Errorf("unsupported stream fallback: %s", p.Stream.Fallback)
	}
	return nil
}
