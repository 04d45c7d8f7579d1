package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"timetable/internal/util"
)

type Config struct {
	OutputDir string
	DBPath    string
	LogLevel  string

	ContactDomain string
	SharedEmail   string
	RosterOrder   string

	GroupField     string
	PersonField    string
	SubjectField   string
	DedupKeyFields []string
	FilterPrefix   string

	StudentsPerGroup int
	HeadmanColumn    bool
	RandomSeed       uint64
}

var defaultKeyFields = []string{"ДеньНедели", "Неделя", "Курс", "Группа", "Дисциплина"}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "out", "seed.db")),
		LogLevel:  getEnv("LOG_LEVEL", "info"),

		ContactDomain: getEnv("CONTACT_DOMAIN", "university.edu"),
		SharedEmail:   getEnv("SHARED_EMAIL", ""),
		RosterOrder:   getEnv("ROSTER_ORDER", "collate"),

		GroupField:     getEnv("GROUP_FIELD", "Группа"),
		PersonField:    getEnv("PERSON_FIELD", "ФизическоеЛицо"),
		SubjectField:   getEnv("SUBJECT_FIELD", "Дисциплина"),
		DedupKeyFields: getEnvList("DEDUP_KEY_FIELDS", defaultKeyFields),
		FilterPrefix:   getEnv("FILTER_PREFIX", "ИП-1"),

		StudentsPerGroup: getEnvInt("STUDENTS_PER_GROUP", 20),
		HeadmanColumn:    getEnvBool("HEADMAN_COLUMN", false),
		RandomSeed:       getEnvUint("RANDOM_SEED", 0),
	}

	if cfg.StudentsPerGroup <= 0 {
		return Config{}, fmt.Errorf("STUDENTS_PER_GROUP must be positive, got %d", cfg.StudentsPerGroup)
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvUint(key string, fallback uint64) uint64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}

// getEnvList reads a comma separated list. An empty list keeps the
// fallback; "*" means no fields, i.e. compare whole records.
func getEnvList(key string, fallback []string) []string {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	if value == "*" {
		return nil
	}
	return util.SplitCSV(value)
}
