package belltimes

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"timetable-manager/core/decode"
)

// Metadata is the provenance envelope written alongside the entries.
type Metadata struct {
	FetchedAt    string `json:"fetched_at"`
	Source       string `json:"source"`
	School       string `json:"school"`
	Structure    string `json:"tt_structure"`
	TotalEntries int    `json:"total_entries"`
}

// Artifact is the bell_times.json document the kiosk consumes.
type Artifact struct {
	Metadata  Metadata   `json:"metadata"`
	BellTimes []BellTime `json:"bell_times"`
}

// NewArtifact wraps entries with a provenance envelope.
func NewArtifact(entries []BellTime, source, school, structure string) *Artifact {
	return &Artifact{
		Metadata: Metadata{
			FetchedAt:    time.Now().Format(time.RFC3339),
			Source:       source,
			School:       school,
			Structure:    structure,
			TotalEntries: len(entries),
		},
		BellTimes: entries,
	}
}

// Records converts the artifact entries to decoded-record form for
// validation and reconciliation.
func (a *Artifact) Records() []*decode.Record {
	records := make([]*decode.Record, 0, len(a.BellTimes))
	for _, b := range a.BellTimes {
		records = append(records, b.Record())
	}
	return records
}

// Write renders the artifact as indented JSON.
func (a *Artifact) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("failed to encode artifact: %w", err)
	}
	return nil
}

// Save writes the artifact to a file.
func (a *Artifact) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return a.Write(f)
}

// LoadArtifact reads a bell_times.json document back.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &a, nil
}

// LoadRecords loads a comparison source: a .json artifact or a raw tagged
// export, determined by content. The returned records are normalized.
func LoadRecords(path string) ([]*decode.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var a Artifact
	if json.Unmarshal(data, &a) == nil && len(a.BellTimes) > 0 {
		records := a.Records()
		Normalize(records)
		return records, nil
	}

	records := decode.Decode(string(data))
	Normalize(records)
	return records, nil
}
