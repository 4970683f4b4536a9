package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pagemill/pagemill/internal/content"
)

// batchFile is the on-disk shape of a record batch. Batches hold
// already-materialized records: the fields are explicit, nothing is
// extracted from front matter or page bodies.
type batchFile struct {
	Records []recordSpec `yaml:"records" json:"records"`
}

// recordSpec is one record as written in a batch file. Timestamps accept
// RFC 3339 or plain YYYY-MM-DD.
type recordSpec struct {
	Path      string  `yaml:"path" json:"path"`
	Title     *string `yaml:"title,omitempty" json:"title,omitempty"`
	Date      string  `yaml:"date,omitempty" json:"date,omitempty"`
	Updated   string  `yaml:"updated,omitempty" json:"updated,omitempty"`
	Weight    *int    `yaml:"weight,omitempty" json:"weight,omitempty"`
	Permalink string  `yaml:"permalink,omitempty" json:"permalink,omitempty"`
}

// LoadError reports a malformed batch file or record.
type LoadError struct {
	File    string
	Index   int // record index, -1 for file-level errors
	Message string
}

func (e *LoadError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: record %d: %s", e.File, e.Index, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// LoadBatch reads a record batch from a YAML or JSON file, chosen by
// extension (.json means JSON, everything else is parsed as YAML).
func LoadBatch(path string) ([]*content.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Index: -1, Message: err.Error()}
	}

	var batch batchFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &batch)
	} else {
		err = yaml.Unmarshal(data, &batch)
	}
	if err != nil {
		return nil, &LoadError{File: path, Index: -1, Message: err.Error()}
	}

	records := make([]*content.Record, 0, len(batch.Records))
	for i, spec := range batch.Records {
		r, err := spec.toRecord()
		if err != nil {
			return nil, &LoadError{File: path, Index: i, Message: err.Error()}
		}
		records = append(records, r)
	}
	return records, nil
}

func (s recordSpec) toRecord() (*content.Record, error) {
	if s.Path == "" {
		return nil, fmt.Errorf("missing path")
	}
	r := &content.Record{
		Path:      s.Path,
		Title:     s.Title,
		Weight:    s.Weight,
		Permalink: s.Permalink,
	}
	if s.Date != "" {
		t, err := parseTimestamp(s.Date)
		if err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
		r.Date = &t
	}
	if s.Updated != "" {
		t, err := parseTimestamp(s.Updated)
		if err != nil {
			return nil, fmt.Errorf("updated: %w", err)
		}
		r.Updated = &t
	}
	return r, nil
}

func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: want RFC 3339 or YYYY-MM-DD", value)
	}
	return t, nil
}
