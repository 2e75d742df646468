// Package datasync backs up scheduler states and review events to YAML files and restores them.
package datasync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/kioku/internal/learning"
	"github.com/at-ishikawa/kioku/internal/schedule"
	"github.com/at-ishikawa/kioku/internal/srs"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	StatesNew     int
	StatesSkipped int
	EventsNew     int
	EventsSkipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// ExportResult tracks what was written by an export.
type ExportResult struct {
	States int
	Events int
}

// Exporter writes the database contents to a backup directory.
type Exporter struct {
	states schedule.Repository
	events learning.Repository
}

// NewExporter creates a new Exporter.
func NewExporter(states schedule.Repository, events learning.Repository) *Exporter {
	return &Exporter{states: states, events: events}
}

// Export writes states.yml and events.yml under dir, creating it if needed.
func (e *Exporter) Export(ctx context.Context, dir string) (*ExportResult, error) {
	states, err := e.states.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("states.FindAll() > %w", err)
	}
	events, err := e.events.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("events.FindAll() > %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	stateRecords := make([]stateRecord, len(states))
	for i, s := range states {
		stateRecords[i] = newStateRecord(s)
	}
	if err := writeYAML(filepath.Join(dir, statesFile), stateRecords); err != nil {
		return nil, err
	}

	eventRecords := make([]eventRecord, len(events))
	for i, ev := range events {
		eventRecords[i] = newEventRecord(ev)
	}
	if err := writeYAML(filepath.Join(dir, eventsFile), eventRecords); err != nil {
		return nil, err
	}

	return &ExportResult{States: len(states), Events: len(events)}, nil
}

// Importer restores a backup directory into the database.
// Existing states and events are never overwritten.
type Importer struct {
	states schedule.Repository
	events learning.Repository
	writer io.Writer
}

// NewImporter creates a new Importer. Per-record progress is written to writer.
func NewImporter(states schedule.Repository, events learning.Repository, writer io.Writer) *Importer {
	return &Importer{states: states, events: events, writer: writer}
}

// Import reads states.yml and events.yml from dir. A missing file is treated as empty.
func (imp *Importer) Import(ctx context.Context, dir string, opts ImportOptions) (*ImportResult, error) {
	var stateRecords []stateRecord
	if err := readYAML(filepath.Join(dir, statesFile), &stateRecords); err != nil {
		return nil, err
	}
	var eventRecords []eventRecord
	if err := readYAML(filepath.Join(dir, eventsFile), &eventRecords); err != nil {
		return nil, err
	}

	var result ImportResult
	if err := imp.importStates(ctx, stateRecords, opts, &result); err != nil {
		return nil, fmt.Errorf("importStates() > %w", err)
	}
	if err := imp.importEvents(ctx, eventRecords, opts, &result); err != nil {
		return nil, fmt.Errorf("importEvents() > %w", err)
	}
	return &result, nil
}

func (imp *Importer) importStates(ctx context.Context, records []stateRecord, opts ImportOptions, result *ImportResult) error {
	if len(records) == 0 {
		return nil
	}
	existing, err := imp.states.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("states.FindAll() > %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, s := range existing {
		known[s.CardID] = true
	}

	for _, rec := range records {
		if known[rec.CardID] {
			fmt.Fprintf(imp.writer, "  [SKIP]  state %s\n", rec.CardID)
			result.StatesSkipped++
			continue
		}
		if !opts.DryRun {
			state := rec.toState()
			if err := imp.states.Create(ctx, &state); err != nil {
				if errors.Is(err, schedule.ErrConflict) {
					result.StatesSkipped++
					continue
				}
				return fmt.Errorf("Create(%s) > %w", rec.CardID, err)
			}
		}
		known[rec.CardID] = true
		fmt.Fprintf(imp.writer, "  [NEW]  state %s\n", rec.CardID)
		result.StatesNew++
	}
	return nil
}

func (imp *Importer) importEvents(ctx context.Context, records []eventRecord, opts ImportOptions, result *ImportResult) error {
	for _, rec := range records {
		if !rec.Rating.IsValid() {
			return fmt.Errorf("event %s rating %q > %w", rec.ID, rec.Rating, srs.ErrInvalidRating)
		}
		exists, err := imp.events.Exists(ctx, rec.ID)
		if err != nil {
			return fmt.Errorf("Exists(%s) > %w", rec.ID, err)
		}
		if exists {
			result.EventsSkipped++
			continue
		}
		if !opts.DryRun {
			if err := imp.events.Append(ctx, rec.toEvent()); err != nil {
				return fmt.Errorf("Append(%s) > %w", rec.ID, err)
			}
		}
		fmt.Fprintf(imp.writer, "  [NEW]  event %s (%s %s)\n", rec.ID, rec.CardID, rec.Rating)
		result.EventsNew++
	}
	return nil
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("yaml.Marshal(%s) > %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}
	return nil
}
