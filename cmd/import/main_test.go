package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zapponejosh/veckoplan/internal/calendar"
	"github.com/zapponejosh/veckoplan/internal/config"
	"github.com/zapponejosh/veckoplan/internal/database"
)

func TestParseEvents(t *testing.T) {
	events, err := parseEvents([]byte(`{"events": [
		{"date": "2025-06-21", "title": "  Midsommarfest ", "notes": "sill"},
		{"date": "2025-12-24", "title": "Julafton"}
	]}`), 2024, 2030)
	if err != nil {
		t.Fatalf("parseEvents() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("parseEvents() returned %d events, want 2", len(events))
	}
	if events[0].Title != "Midsommarfest" || events[0].Notes == nil || *events[0].Notes != "sill" {
		t.Errorf("events[0] = %+v", events[0])
	}
	if events[1].Notes != nil {
		t.Errorf("events[1].Notes = %v, want nil", events[1].Notes)
	}
}

func TestParseEvents_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{"events": [`},
		{"bad date", `{"events": [{"date": "2025-02-29", "title": "x"}]}`},
		{"missing title", `{"events": [{"date": "2025-02-28", "title": " "}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseEvents([]byte(tt.data), 2024, 2030); err == nil {
				t.Error("parseEvents() should fail")
			}
		})
	}

	_, err := parseEvents([]byte(`{"events": [{"date": "2025-02-29", "title": "x"}]}`), 2024, 2030)
	if !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("error = %v, want ErrInvalidDate", err)
	}
}

func TestParseEvents_YearRange(t *testing.T) {
	tests := []struct {
		date    string
		wantErr bool
	}{
		{"2023-12-31", true},
		{"2024-01-01", false},
		{"2030-12-31", false},
		{"2031-01-01", true},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			data := `{"events": [{"date": "` + tt.date + `", "title": "x"}]}`
			_, err := parseEvents([]byte(data), 2024, 2030)
			if tt.wantErr {
				if !errors.Is(err, errOutOfRange) {
					t.Errorf("error = %v, want errOutOfRange", err)
				}
				return
			}
			if err != nil {
				t.Errorf("parseEvents() error = %v", err)
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "events.json")
	dbPath := filepath.Join(dir, "veckoplan.db")

	data := `{"events": [
		{"date": "2025-06-21", "title": "Midsommarfest"},
		{"date": "2025-06-23", "title": "Tillbaka på jobbet"},
		{"date": "2025-12-25", "title": "Julbord"}
	]}`
	if err := os.WriteFile(jsonPath, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	// The allowed years follow the current date, so cover 2025 whenever the
	// test runs.
	year := calendar.Today(time.UTC).Year
	cfg := &config.Config{
		Timezone:        "UTC",
		EventYearsBack:  max(year-2025, 0),
		EventYearsAhead: max(2025-year, 0),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(jsonPath, dbPath, cfg, logger); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer db.Close()

	stats, err := db.GetEventStats(context.Background())
	if err != nil {
		t.Fatalf("GetEventStats() error = %v", err)
	}
	if stats.TotalEvents != 3 || stats.EarliestDate != "2025-06-21" || stats.LatestDate != "2025-12-25" {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRun_OutOfRangeWritesNothing(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "events.json")
	dbPath := filepath.Join(dir, "veckoplan.db")

	year := calendar.Today(time.UTC).Year
	data := fmt.Sprintf(`{"events": [
		{"date": "%d-06-01", "title": "I år"},
		{"date": "%d-06-01", "title": "För länge sedan"}
	]}`, year, year-5)
	if err := os.WriteFile(jsonPath, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := &config.Config{Timezone: "UTC", EventYearsBack: 1, EventYearsAhead: 5}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(jsonPath, dbPath, cfg, logger); !errors.Is(err, errOutOfRange) {
		t.Fatalf("run() error = %v, want errOutOfRange", err)
	}

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Errorf("database should not be created, stat error = %v", err)
	}
}
