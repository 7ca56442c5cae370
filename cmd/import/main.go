// Command import bulk-loads planner events from a JSON file into the SQLite
// database.
//
// Usage:
//
//	go run ./cmd/import -json data/events.json -db data/veckoplan.db
//
// The file holds {"events": [{"date": "2025-06-21", "title": "...", "notes": "..."}]}.
// All events are inserted in one transaction; any invalid entry aborts the
// import and nothing is written. Dates must fall within the years allowed by
// EVENT_YEARS_BACK and EVENT_YEARS_AHEAD, as for events created over the API.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/veckoplan/internal/calendar"
	"github.com/zapponejosh/veckoplan/internal/config"
	"github.com/zapponejosh/veckoplan/internal/database"
)

var errOutOfRange = errors.New("date outside the allowed event years")

// ImportFile is the JSON layout read by the importer.
type ImportFile struct {
	Events []ImportEvent `json:"events"`
}

// ImportEvent is one event entry of an import file.
type ImportEvent struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
}

// ImportStats tracks import statistics.
type ImportStats struct {
	Events   int
	Holidays int // events landing on a public holiday
}

func main() {
	jsonPath := flag.String("json", "data/events.json", "Path to events JSON file")
	dbPath := flag.String("db", "data/veckoplan.db", "Path to SQLite database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(*jsonPath, *dbPath, cfg, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import complete")
}

func run(jsonPath, dbPath string, cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	logger.Info("reading JSON file", slog.String("path", jsonPath))

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("read JSON file: %w", err)
	}

	first, last := cfg.EventYears(calendar.Today(cfg.Location()).Year)
	events, err := parseEvents(data, first, last)
	if err != nil {
		return err
	}
	logger.Info("parsed JSON",
		slog.Int("events", len(events)),
		slog.Int("first_year", first),
		slog.Int("last_year", last),
	)

	logger.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations complete", slog.Int("applied", migrated))

	var stats ImportStats
	err = db.WithTx(ctx, func(tx *database.Tx) error {
		return importEvents(ctx, tx, events, logger, &stats)
	})
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}

	total, err := db.GetEventStats(ctx)
	if err != nil {
		return fmt.Errorf("event stats: %w", err)
	}

	elapsed := time.Since(startTime)
	logger.Info("import verified",
		slog.Int("total_events", total.TotalEvents),
		slog.String("earliest", total.EarliestDate),
		slog.String("latest", total.LatestDate),
		slog.Duration("elapsed", elapsed),
	)

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Events imported:     %d\n", stats.Events)
	fmt.Printf("On public holidays:  %d\n", stats.Holidays)
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))

	return nil
}

// parseEvents decodes and validates an import file. Dates are normalized to
// YYYY-MM-DD and must fall in the years first through last; titles are
// trimmed.
func parseEvents(data []byte, first, last int) ([]database.Event, error) {
	var file ImportFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	events := make([]database.Event, 0, len(file.Events))
	for i, e := range file.Events {
		d, err := calendar.ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		if d.Year < first || d.Year > last {
			return nil, fmt.Errorf("event %d: %w: %s not in %d-%d", i+1, errOutOfRange, d, first, last)
		}
		title := strings.TrimSpace(e.Title)
		if title == "" {
			return nil, fmt.Errorf("event %d: title is required", i+1)
		}

		event := database.Event{Date: d.String(), Title: title}
		if notes := strings.TrimSpace(e.Notes); notes != "" {
			event.Notes = &notes
		}
		events = append(events, event)
	}
	return events, nil
}

// importEvents inserts all events within tx.
func importEvents(ctx context.Context, tx *database.Tx, events []database.Event, logger *slog.Logger, stats *ImportStats) error {
	for i := range events {
		if err := tx.InsertEvent(ctx, &events[i]); err != nil {
			return fmt.Errorf("event %d: %w", i+1, err)
		}
		stats.Events++

		// Dates were validated in parseEvents.
		if d, err := calendar.ParseDate(events[i].Date); err == nil && calendar.IsHoliday(d) {
			stats.Holidays++
		}

		if (i+1)%100 == 0 {
			logger.Debug("import progress",
				slog.Int("event", i+1),
				slog.Int("total", len(events)),
			)
		}
	}
	return nil
}
