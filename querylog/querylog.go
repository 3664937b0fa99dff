// Package querylog is the write-only query log sink. Recording is
// fire-and-forget: a failed append must never affect the query result, so
// callers downgrade errors to warnings.
package querylog

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one processed-query record.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Query     string    `json:"query"`   // raw query text, as typed
	Kind      string    `json:"kind"`    // result kind tag
	Project   string    `json:"project"` // resolved canonical project, "" = none
	Summary   string    `json:"summary"` // one-line result summary
}

// NewEntry stamps an Entry with a fresh ID and the current time.
func NewEntry(query, kind, project, summary string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Query:     query,
		Kind:      kind,
		Project:   project,
		Summary:   summary,
	}
}

// Recorder appends entries to a log sink.
type Recorder interface {
	Record(entry Entry) error
}

// Nop discards every entry. Used when no sink is configured.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(Entry) error { return nil }
