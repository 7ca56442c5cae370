package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/zapponejosh/veckoplan/internal/api"
	"github.com/zapponejosh/veckoplan/internal/config"
	"github.com/zapponejosh/veckoplan/internal/database"
	"github.com/zapponejosh/veckoplan/internal/logger"
)

func TestRunnerAgainstServer(t *testing.T) {
	log := logger.Discard()

	db, err := database.Open(database.DefaultConfig(":memory:"), log)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Env:             config.EnvDevelopment,
		Timezone:        config.DefaultTimezone,
		EventYearsBack:  1,
		EventYearsAhead: 5,
	}
	srv := httptest.NewServer(api.SetupRoutes(api.NewHandlers(db, cfg, log), cfg, log))
	defer srv.Close()

	var out bytes.Buffer
	runner := NewTestRunner(srv.URL, &out, true)
	runner.Run()

	if runner.errorCount != 0 {
		t.Errorf("smoke run failed %d checks:\n%s", runner.errorCount, out.String())
	}
	if runner.successCount == 0 {
		t.Error("smoke run recorded no checks")
	}
}
