package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "sabot.dev/pkg/sabot/internal/model"
)

const reportFileMode = 0o600

// ReportStore persists run reports so they can be viewed, merged and
// gated after the fact.
type ReportStore interface {
	// Save writes one report document to path, creating parent
	// directories as needed.
	Save(path m.Path, report m.Report) error

	// Load reads one report document from path.
	Load(path m.Path) (m.Report, error)
}

// YAMLReportStore stores reports as YAML documents on disk.
type YAMLReportStore struct{}

// NewYAMLReportStore constructs a YAMLReportStore.
func NewYAMLReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// Save marshals the report and writes it to path.
func (s *YAMLReportStore) Save(path m.Path, report m.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, reportFileMode); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// Load reads and unmarshals the report at path.
func (s *YAMLReportStore) Load(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("unmarshal report %s: %w", path, err)
	}

	return report, nil
}
