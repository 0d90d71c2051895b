// =============================================================================
// VR/VA Benefit Purchase Automation - Configuration Module
// =============================================================================
//
// This module loads the application configuration: where to look for the
// source spreadsheets, the expected file name of each source, and the
// fallback constants the rule engine uses when the human-maintained
// reference tables are missing or incomplete.
//
// CONFIGURATION SOURCES (later wins):
//   1. Built-in defaults (mirror the historical purchase process)
//   2. YAML file (config.yaml, optional)
//   3. Environment variables, optionally loaded from a .env file
//      (VRCALC_DATA_DIR, VRCALC_LOG_LEVEL)
//
// The fallback constants live here rather than as literals inside the rule
// engine so the calculator and lookup resolvers stay testable with injected
// parameters.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	// DataDirs are the directories searched, in order, for each source
	// spreadsheet. The first directory containing the file wins.
	DataDirs []string `yaml:"data_dirs"`

	// Period is the default target period (YYYY-MM) when the --competencia
	// flag is not given.
	Period string `yaml:"period"`

	// Sources names the expected spreadsheet file per source.
	Sources Sources `yaml:"sources"`

	// Defaults holds the fallback constants for the rule engine.
	Defaults Defaults `yaml:"defaults"`

	// Split is the employer/employee cost split applied to every total.
	Split Split `yaml:"split"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// Sources names the spreadsheet file expected for each input. Every source
// except the active roster is optional at run time; a missing file simply
// contributes no exclusion or adjustment.
type Sources struct {
	Active      string `yaml:"active"`       // primary roster (required)
	Vacation    string `yaml:"vacation"`     // vacation days taken in period
	Terminated  string `yaml:"terminated"`   // termination date + notice status
	Admissions  string `yaml:"admissions"`   // admissions in/around period
	UnionValues string `yaml:"union_values"` // region -> daily value reference
	UnionDays   string `yaml:"union_days"`   // union -> working days reference
	Leave       string `yaml:"leave"`        // leave of absence
	Interns     string `yaml:"interns"`      // intern roster
	Apprentices string `yaml:"apprentices"`  // apprentice roster
	Overseas    string `yaml:"overseas"`     // overseas assignment roster
}

// Defaults holds the rule-engine fallback constants.
type Defaults struct {
	// WorkingDays is the eligible-days fallback when the union label matches
	// no entry of the working-days reference table.
	WorkingDays int `yaml:"working_days"`

	// DailyValue is the daily-value fallback for unclassified regions.
	DailyValue float64 `yaml:"daily_value"`

	// RegionValues are the per-region daily-value fallbacks used when the
	// region/value reference table lacks the region. Keys are canonical
	// region names; matching is accent-insensitive.
	RegionValues map[string]float64 `yaml:"region_values"`

	// NoticeMarker is the affirmative termination-notice literal. A
	// termination on or before the 15th only zeroes the benefit when the
	// notice field equals this marker (case-insensitive, trimmed).
	NoticeMarker string `yaml:"notice_marker"`

	// DirectorTerm is the job-title fragment identifying director-level
	// employees, who are excluded from the benefit.
	DirectorTerm string `yaml:"director_term"`
}

// Split is the employer/employee cost split. The two fractions are expected
// to sum to 1.0.
type Split struct {
	Employer float64 `yaml:"employer"`
	Employee float64 `yaml:"employee"`
}

// Default returns the built-in configuration, mirroring the historical
// purchase process file names and constants.
func Default() *Config {
	return &Config{
		DataDirs: []string{".", "Dados", "Uploads"},
		Period:   "2025-05",
		Sources: Sources{
			Active:      "ATIVOS.xlsx",
			Vacation:    "FERIAS.xlsx",
			Terminated:  "DESLIGADOS.xlsx",
			Admissions:  "ADMISSOABRIL.xlsx",
			UnionValues: "Basesindicatoxvalor.xlsx",
			UnionDays:   "Basediasuteis.xlsx",
			Leave:       "AFASTAMENTOS.xlsx",
			Interns:     "ESTAGIO.xlsx",
			Apprentices: "APRENDIZ.xlsx",
			Overseas:    "EXTERIOR.xlsx",
		},
		Defaults: Defaults{
			WorkingDays: 22,
			DailyValue:  35.0,
			RegionValues: map[string]float64{
				"São Paulo":         37.5,
				"Rio de Janeiro":    35.0,
				"Rio Grande do Sul": 35.0,
				"Paraná":            35.0,
			},
			NoticeMarker: "OK",
			DirectorTerm: "DIRETOR",
		},
		Split: Split{
			Employer: 0.80,
			Employee: 0.20,
		},
		LogLevel: "info",
	}
}

// Load builds the configuration from the YAML file at path, layered on the
// built-in defaults and finalized with environment overrides. A missing
// file is not an error; an unreadable or malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logrus.WithField("path", path).Debug("no config file, using built-in defaults")
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		applyDefaults(cfg)
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyDefaults backfills any field the YAML file left unset.
func applyDefaults(cfg *Config) {
	def := Default()

	if len(cfg.DataDirs) == 0 {
		cfg.DataDirs = def.DataDirs
	}
	if cfg.Period == "" {
		cfg.Period = def.Period
	}
	if cfg.Sources.Active == "" {
		cfg.Sources.Active = def.Sources.Active
	}
	if cfg.Sources.Vacation == "" {
		cfg.Sources.Vacation = def.Sources.Vacation
	}
	if cfg.Sources.Terminated == "" {
		cfg.Sources.Terminated = def.Sources.Terminated
	}
	if cfg.Sources.Admissions == "" {
		cfg.Sources.Admissions = def.Sources.Admissions
	}
	if cfg.Sources.UnionValues == "" {
		cfg.Sources.UnionValues = def.Sources.UnionValues
	}
	if cfg.Sources.UnionDays == "" {
		cfg.Sources.UnionDays = def.Sources.UnionDays
	}
	if cfg.Sources.Leave == "" {
		cfg.Sources.Leave = def.Sources.Leave
	}
	if cfg.Sources.Interns == "" {
		cfg.Sources.Interns = def.Sources.Interns
	}
	if cfg.Sources.Apprentices == "" {
		cfg.Sources.Apprentices = def.Sources.Apprentices
	}
	if cfg.Sources.Overseas == "" {
		cfg.Sources.Overseas = def.Sources.Overseas
	}
	if cfg.Defaults.WorkingDays == 0 {
		cfg.Defaults.WorkingDays = def.Defaults.WorkingDays
	}
	if cfg.Defaults.DailyValue == 0 {
		cfg.Defaults.DailyValue = def.Defaults.DailyValue
	}
	if len(cfg.Defaults.RegionValues) == 0 {
		cfg.Defaults.RegionValues = def.Defaults.RegionValues
	}
	if cfg.Defaults.NoticeMarker == "" {
		cfg.Defaults.NoticeMarker = def.Defaults.NoticeMarker
	}
	if cfg.Defaults.DirectorTerm == "" {
		cfg.Defaults.DirectorTerm = def.Defaults.DirectorTerm
	}
	if cfg.Split.Employer == 0 && cfg.Split.Employee == 0 {
		cfg.Split = def.Split
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

// applyEnv applies environment overrides. A .env file is honored when
// present but is in no way required.
func applyEnv(cfg *Config) {
	if err := godotenv.Load(); err == nil {
		logrus.Debug("loaded environment from .env")
	}

	if dir := getEnv("VRCALC_DATA_DIR", ""); dir != "" {
		// An explicit data dir is searched first, ahead of the configured ones.
		cfg.DataDirs = append([]string{dir}, cfg.DataDirs...)
	}
	if level := getEnv("VRCALC_LOG_LEVEL", ""); level != "" {
		cfg.LogLevel = level
	}
}

// validate rejects configurations the pipeline cannot run with.
func validate(cfg *Config) error {
	if cfg.Sources.Active == "" {
		return fmt.Errorf("sources.active must name the roster spreadsheet")
	}
	if cfg.Defaults.WorkingDays < 0 {
		return fmt.Errorf("defaults.working_days must not be negative")
	}
	if cfg.Split.Employer < 0 || cfg.Split.Employee < 0 {
		return fmt.Errorf("split fractions must not be negative")
	}
	return nil
}

// ParseLevel translates the configured log level into a logrus level,
// defaulting to info for unknown values.
func (c *Config) ParseLevel() logrus.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
