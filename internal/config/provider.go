package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-coach/internal/schemas"
	"github.com/jonathan/career-coach/internal/types"
)

//go:embed benchmark_thresholds.schema.json
var thresholdsSchema string

//go:embed ats_profiles.schema.json
var atsProfilesSchema string

// Provider exposes the immutable configuration tables. Implementations load
// once and are safe to share by reference across concurrent turn processing.
type Provider interface {
	// GetThresholds returns the threshold table for a benchmark key, or nil
	// when the key has no configured table.
	GetThresholds(key types.BenchmarkKey) (*types.BenchmarkThresholds, error)

	// GetATSProfiles returns the configured ATS system profiles.
	GetATSProfiles() (*types.ATSProfileSet, error)

	// DefaultKey returns the fallback benchmark key, or nil if none is
	// configured.
	DefaultKey() *types.BenchmarkKey
}

// thresholdsDocument is the on-disk shape of the benchmark thresholds file.
type thresholdsDocument struct {
	DefaultKey *types.BenchmarkKey `json:"default_key,omitempty"`
	Benchmarks []struct {
		Key        types.BenchmarkKey   `json:"key"`
		Dimensions map[string][]float64 `json:"dimensions"`
	} `json:"benchmarks"`
}

// StaticProvider serves tables held in memory. It backs both the built-in
// defaults and file-loaded configuration.
type StaticProvider struct {
	tables     map[string]*types.BenchmarkThresholds
	atsSet     *types.ATSProfileSet
	defaultKey *types.BenchmarkKey
}

// NewStaticProvider creates a provider over explicit tables.
func NewStaticProvider(tables []types.BenchmarkThresholds, atsSet *types.ATSProfileSet, defaultKey *types.BenchmarkKey) (*StaticProvider, error) {
	indexed := make(map[string]*types.BenchmarkThresholds, len(tables))
	for i := range tables {
		t := tables[i]
		if err := t.Validate(); err != nil {
			return nil, err
		}
		indexed[t.Key.String()] = &t
	}
	if atsSet != nil {
		for i := range atsSet.Profiles {
			if err := atsSet.Profiles[i].Validate(); err != nil {
				return nil, err
			}
		}
	}
	if defaultKey != nil {
		if _, ok := indexed[defaultKey.String()]; !ok {
			return nil, fmt.Errorf("default benchmark key %s has no configured table", defaultKey)
		}
	}
	return &StaticProvider{tables: indexed, atsSet: atsSet, defaultKey: defaultKey}, nil
}

// GetThresholds implements Provider.
func (p *StaticProvider) GetThresholds(key types.BenchmarkKey) (*types.BenchmarkThresholds, error) {
	table, ok := p.tables[key.String()]
	if !ok {
		return nil, fmt.Errorf("no thresholds configured for key %s", key)
	}
	return table, nil
}

// GetATSProfiles implements Provider.
func (p *StaticProvider) GetATSProfiles() (*types.ATSProfileSet, error) {
	if p.atsSet == nil {
		return nil, fmt.Errorf("no ATS profiles configured")
	}
	return p.atsSet, nil
}

// DefaultKey implements Provider.
func (p *StaticProvider) DefaultKey() *types.BenchmarkKey {
	return p.defaultKey
}

// NewFileProvider loads benchmark thresholds and ATS profiles from JSON files,
// validating each document against its schema before use. Either path may be
// empty, in which case the built-in defaults for that table are used.
func NewFileProvider(thresholdsPath, atsProfilesPath string) (*StaticProvider, error) {
	tables := DefaultThresholdTables()
	defaultKey := defaultBenchmarkKey()
	atsSet := DefaultATSProfileSet()

	if thresholdsPath != "" {
		doc, err := loadThresholdsFile(thresholdsPath)
		if err != nil {
			return nil, err
		}
		tables = tables[:0]
		for _, b := range doc.Benchmarks {
			tables = append(tables, types.BenchmarkThresholds{Key: b.Key, Dimensions: b.Dimensions})
		}
		defaultKey = doc.DefaultKey
	}

	if atsProfilesPath != "" {
		set, err := loadATSProfilesFile(atsProfilesPath)
		if err != nil {
			return nil, err
		}
		atsSet = set
	}

	return NewStaticProvider(tables, atsSet, defaultKey)
}

func loadThresholdsFile(path string) (*thresholdsDocument, error) {
	if err := schemas.ValidateJSONFile(thresholdsSchema, path); err != nil {
		return nil, fmt.Errorf("thresholds file %s: %w", path, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read thresholds file %s: %w", path, err)
	}
	var doc thresholdsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse thresholds file %s: %w", path, err)
	}
	return &doc, nil
}

func loadATSProfilesFile(path string) (*types.ATSProfileSet, error) {
	if err := schemas.ValidateJSONFile(atsProfilesSchema, path); err != nil {
		return nil, fmt.Errorf("ats profiles file %s: %w", path, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ats profiles file %s: %w", path, err)
	}
	var set types.ATSProfileSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("failed to parse ats profiles file %s: %w", path, err)
	}
	return &set, nil
}
