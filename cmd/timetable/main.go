package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"timetable/internal/config"
	"timetable/internal/contact"
	"timetable/internal/fakedata"
	"timetable/internal/logging"
	"timetable/internal/pipeline"
	"timetable/internal/record"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	must(err)
	defer func() { _ = logger.Sync() }()

	cmd := os.Args[1]
	switch cmd {
	case "schedule:dedupe":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "schedule file (.json, .xlsx, .html)")
		output := fs.String("output", "", "output json path")
		keys := fs.String("keys", "", "comma separated key fields, * for whole records")
		_ = fs.Parse(os.Args[2:])
		if *input == "" || *output == "" {
			must(fmt.Errorf("--input and --output are required"))
		}
		records, err := pipeline.ReadRecords(*input)
		must(err)
		spec := keySpec(*keys, cfg)
		res := pipeline.Dedupe(records, spec.Extract)
		must(pipeline.WriteRecordsJSON(res.Unique, *output))
		logger.Info("schedule deduplicated",
			zap.String("input", *input),
			zap.String("keys", spec.String()),
			zap.Int("records", len(records)),
			zap.Int("removed", res.Removed),
		)
		fmt.Printf("dedupe done records=%d unique=%d removed=%d output=%s\n", len(records), len(res.Unique), res.Removed, *output)
	case "schedule:filter":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "schedule file")
		output := fs.String("output", "", "output json path")
		prefix := fs.String("prefix", cfg.FilterPrefix, "group prefix")
		pattern := fs.String("pattern", "", "group regular expression")
		stream := fs.String("stream", "", "keep groups of this stream, e.g. ИП1**")
		_ = fs.Parse(os.Args[2:])
		if *input == "" || *output == "" {
			must(fmt.Errorf("--input and --output are required"))
		}
		records, err := pipeline.ReadRecords(*input)
		must(err)
		var matchers []pipeline.GroupMatcher
		if *prefix != "" {
			matchers = append(matchers, pipeline.GroupPrefix(*prefix))
		}
		if *pattern != "" {
			m, err := pipeline.GroupPattern(*pattern)
			must(err)
			matchers = append(matchers, m)
		}
		if *stream != "" {
			matchers = append(matchers, pipeline.GroupStream(pipeline.MaskRule{}, *stream))
		}
		kept := pipeline.FilterByGroup(records, cfg.GroupField, pipeline.AllOf(matchers...))
		must(pipeline.WriteRecordsJSON(kept, *output))
		logger.Info("schedule filtered", zap.String("input", *input), zap.Int("records", len(records)), zap.Int("kept", len(kept)))
		fmt.Printf("filter done records=%d kept=%d output=%s\n", len(records), len(kept), *output)
	case "schedule:groups":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "schedule file")
		_ = fs.Parse(os.Args[2:])
		if *input == "" {
			must(fmt.Errorf("--input is required"))
		}
		records, err := pipeline.ReadRecords(*input)
		must(err)
		groups := pipeline.DistinctGroups(records, cfg.GroupField)
		for _, g := range pipeline.GroupStreams(groups, pipeline.MaskRule{}) {
			fmt.Printf("%s\t%s\n", g.Group, g.Stream)
		}
		fmt.Printf("total groups: %d\n", len(groups))
	case "roster:build":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "schedule file")
		output := fs.String("output", "", "output roster json path")
		shared := fs.String("shared-email", cfg.SharedEmail, "give every person this address")
		order := fs.String("order", cfg.RosterOrder, "collate|bytes")
		seed := fs.Uint64("seed", cfg.RandomSeed, "random seed for fallback addresses, 0 = time based")
		_ = fs.Parse(os.Args[2:])
		if *input == "" || *output == "" {
			must(fmt.Errorf("--input and --output are required"))
		}
		ord, err := pipeline.ParseOrder(*order)
		must(err)
		records, err := pipeline.ReadRecords(*input)
		must(err)
		synth := contactFunc(cfg, *shared, fakedata.New(*seed), logger)
		roster := pipeline.BuildRoster(records, cfg.PersonField, synth)
		must(pipeline.WriteRosterJSON(roster.Entries(ord), *output))
		logger.Info("roster built", zap.String("input", *input), zap.Int("records", len(records)), zap.Int("persons", roster.Len()))
		fmt.Printf("roster done persons=%d output=%s\n", roster.Len(), *output)
	case "students:export":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		output := fs.String("output", "", "output xlsx path, overrides the profile")
		input := fs.String("input", "", "schedule file, needed when groups come from the schedule")
		profilePath := fs.String("profile", "", "export profile yaml")
		seed := fs.Uint64("seed", cfg.RandomSeed, "random seed, 0 = time based")
		_ = fs.Parse(os.Args[2:])

		profile := cfg.DefaultProfile()
		if *profilePath != "" {
			profile, err = cfg.LoadProfile(*profilePath)
			must(err)
		}
		if *output != "" {
			profile.Output = *output
		}
		if profile.Output == "" {
			must(fmt.Errorf("--output is required when the profile has none"))
		}

		var schedule []record.Record
		if profile.GroupsFromSchedule {
			if *input == "" {
				must(fmt.Errorf("--input is required when groups come from the schedule"))
			}
			schedule, err = pipeline.ReadRecords(*input)
			must(err)
		}

		people := fakedata.New(*seed)
		exporter := pipeline.StudentExporter{People: people, Synth: contactFunc(cfg, "", people, logger)}
		sheets, err := exporter.Export(profile, schedule, cfg.GroupField, profile.Output)
		must(err)
		logger.Info("students exported", zap.Int("groups", len(sheets)), zap.Uint64("seed", people.Seed()), zap.String("output", profile.Output))
		fmt.Printf("students done groups=%d output=%s\n", len(sheets), profile.Output)
	case "db:export":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "schedule file")
		out := fs.String("out", cfg.DBPath, "sqlite database path")
		keys := fs.String("keys", "", "comma separated key fields, * for whole records")
		seed := fs.Uint64("seed", cfg.RandomSeed, "random seed for fallback addresses, 0 = time based")
		_ = fs.Parse(os.Args[2:])
		if *input == "" || *out == "" {
			must(fmt.Errorf("--input and --out are required"))
		}
		records, err := pipeline.ReadRecords(*input)
		must(err)
		res := pipeline.Dedupe(records, keySpec(*keys, cfg).Extract)
		svc := newService(cfg, logger, *seed)
		traceID := uuid.NewString()
		counts, err := svc.ExportSeed(*out, traceID, res.Unique)
		must(err)
		logger.Info("seed database written",
			zap.String("trace_id", traceID),
			zap.Int("teachers", counts.Teachers),
			zap.Int("groups", counts.Groups),
			zap.Int("schedule", counts.Schedule),
		)
		fmt.Printf("db export done teachers=%d groups=%d schedule=%d out=%s\n", counts.Teachers, counts.Groups, counts.Schedule, *out)
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "schedule file")
		outDir := fs.String("out-dir", cfg.OutputDir, "output directory")
		keys := fs.String("keys", "", "comma separated key fields, * for whole records")
		seed := fs.Uint64("seed", cfg.RandomSeed, "random seed, 0 = time based")
		_ = fs.Parse(os.Args[2:])
		if *input == "" {
			must(fmt.Errorf("--input is required"))
		}
		svc := newService(cfg, logger, *seed)
		summary, err := svc.Run(*input, *outDir, keySpec(*keys, cfg))
		must(err)
		fmt.Printf("run done trace=%s records=%d unique=%d removed=%d persons=%d groups=%d streams=%d\n",
			summary.TraceID, summary.Records, summary.Unique, summary.Removed, summary.Persons, summary.Groups, summary.Streams)
		fmt.Printf("outputs: %s\n", strings.Join([]string{
			filepath.Join(*outDir, pipeline.ScheduleFile),
			filepath.Join(*outDir, pipeline.RosterFile),
			filepath.Join(*outDir, pipeline.StudentsFile),
			filepath.Join(*outDir, pipeline.SeedFile),
		}, ", "))
	default:
		usage()
		os.Exit(1)
	}
}

func newService(cfg config.Config, logger *zap.Logger, seed uint64) *pipeline.ProcessingService {
	people := fakedata.New(seed)
	svc, err := pipeline.NewProcessingService(cfg, logger, contactFunc(cfg, cfg.SharedEmail, people, logger), people)
	must(err)
	return svc
}

func contactFunc(cfg config.Config, shared string, fallback contact.FallbackProvider, logger *zap.Logger) pipeline.ContactFunc {
	if strings.TrimSpace(shared) != "" {
		return pipeline.SharedContact(strings.TrimSpace(shared))
	}
	return contact.NewSynthesizer(cfg.ContactDomain, fallback, logger).Synthesize
}

// keySpec resolves --keys: empty uses DEDUP_KEY_FIELDS, "*" compares
// whole records.
func keySpec(flagValue string, cfg config.Config) pipeline.KeySpec {
	switch v := strings.TrimSpace(flagValue); v {
	case "":
		return pipeline.ByFields(cfg.DedupKeyFields...)
	case "*":
		return pipeline.AllFields()
	default:
		return pipeline.ParseKeySpec(v)
	}
}

func usage() {
	fmt.Println("usage: timetable <command>")
	fmt.Println("commands:")
	fmt.Println("  schedule:dedupe --input=schedule.json --output=out/unique.json [--keys=ДеньНедели,Неделя,Курс,Группа,Дисциплина]")
	fmt.Println("  schedule:filter --input=... --output=... [--prefix=ИП-1] [--pattern=regex] [--stream=ИП1**]")
	fmt.Println("  schedule:groups --input=...")
	fmt.Println("  roster:build --input=... --output=out/roster.json [--shared-email=addr] [--order=collate|bytes] [--seed=N]")
	fmt.Println("  students:export --output=out/students.xlsx [--input=...] [--profile=profile.yaml] [--seed=N]")
	fmt.Println("  db:export --input=... --out=out/seed.db [--keys=...] [--seed=N]")
	fmt.Println("  run --input=... --out-dir=out [--keys=...] [--seed=N]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
