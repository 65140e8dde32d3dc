package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DatasetSchema is the top-level structure of a dataset file. Files ending in
// .json are parsed as JSON; everything else as YAML.
type DatasetSchema struct {
	Categories []CategoryImport `json:"categories" yaml:"categories"`
	// Compensation distinguishes absent/null (use default rules) from an
	// explicit list, which may be empty.
	Compensation *[]CompensationImport `json:"compensation,omitempty" yaml:"compensation,omitempty"`
	Entries      []EntryImport         `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// EntriesSchema is the structure of an entry-only log file.
type EntriesSchema struct {
	Entries []EntryImport `json:"entries" yaml:"entries"`
}

type CategoryImport struct {
	ID        string         `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string         `json:"name" yaml:"name"`
	Unit      string         `json:"unit,omitempty" yaml:"unit,omitempty"`
	Enabled   *bool          `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	SortOrder *int           `json:"sort_order,omitempty" yaml:"sort_order,omitempty"`
	Target    TargetImport   `json:"target" yaml:"target"`
	Profile   *ProfileImport `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// TargetImport describes a target rule. Value is the exact target; Min and
// Max are the floor and ceiling of the other kinds.
type TargetImport struct {
	Kind      string   `json:"kind" yaml:"kind"`
	Value     *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Tolerance *float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
}

// ProfileImport overrides the template-derived profile field by field.
type ProfileImport struct {
	Weight          *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	UnderPenalty    *float64 `json:"under_penalty_per_unit,omitempty" yaml:"under_penalty_per_unit,omitempty"`
	OverPenalty     *float64 `json:"over_penalty_per_unit,omitempty" yaml:"over_penalty_per_unit,omitempty"`
	UnderSoftLimit  *float64 `json:"under_soft_limit,omitempty" yaml:"under_soft_limit,omitempty"`
	OverSoftLimit   *float64 `json:"over_soft_limit,omitempty" yaml:"over_soft_limit,omitempty"`
	Curve           string   `json:"curve,omitempty" yaml:"curve,omitempty"`
	CapOverAtTarget *bool    `json:"cap_over_at_target,omitempty" yaml:"cap_over_at_target,omitempty"`
}

// CompensationImport references categories by ID or name.
type CompensationImport struct {
	From      string  `json:"from" yaml:"from"`
	To        string  `json:"to" yaml:"to"`
	Ratio     float64 `json:"ratio" yaml:"ratio"`
	MaxOffset float64 `json:"max_offset" yaml:"max_offset"`
}

// EntryImport is one logged portion. Day overrides the day derived from
// LoggedAt; at least one of the two is required.
type EntryImport struct {
	ID       string  `json:"id,omitempty" yaml:"id,omitempty"`
	Category string  `json:"category" yaml:"category"`
	Slot     string  `json:"slot,omitempty" yaml:"slot,omitempty"`
	Portion  float64 `json:"portion" yaml:"portion"`
	LoggedAt string  `json:"logged_at,omitempty" yaml:"logged_at,omitempty"`
	Day      string  `json:"day,omitempty" yaml:"day,omitempty"`
}

// LoadDatasetSchema reads and parses a dataset file.
func LoadDatasetSchema(path string) (*DatasetSchema, error) {
	var schema DatasetSchema
	if err := decodeFile(path, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// LoadEntriesSchema reads and parses an entry log file.
func LoadEntriesSchema(path string) (*EntriesSchema, error) {
	var schema EntriesSchema
	if err := decodeFile(path, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// ParseDataset decodes dataset bytes in the given format ("json" or "yaml").
func ParseDataset(data []byte, format string) (*DatasetSchema, error) {
	var schema DatasetSchema
	if err := decode(data, format, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := decode(data, formatFor(path), v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func decode(data []byte, format string, v any) error {
	if format == "json" {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

func formatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}
