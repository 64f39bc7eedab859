package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/paddle-roster/internal/config"
	"github.com/riskibarqy/paddle-roster/internal/infrastructure/scheduler"
	"github.com/riskibarqy/paddle-roster/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:                config.EnvDev,
		HTTPAddr:              ":0",
		CacheEnabled:          true,
		CacheTTL:              time.Minute,
		ReadTimeout:           time.Second,
		WriteTimeout:          time.Second,
		TenniscoresBaseURL:    "https://example.invalid",
		TenniscoresTimeout:    time.Second,
		MatchScrapeCooldown:   24 * time.Hour,
		SchedulerEnabled:      true,
		SchedulerLocation:     time.UTC,
		ScheduleRosterSync:    scheduler.WeeklySpec{Weekday: time.Monday, Hour: 3},
		ScheduleRankingsSync:  scheduler.WeeklySpec{Weekday: time.Monday, Hour: 5},
		ScrapeRequestInterval: 0,
	}
}

func TestNew_MemoryBackendSeedsDirectory(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer a.Close()

	entries, err := a.DirectoryService.ListEntries(ctx)
	if err != nil {
		t.Fatalf("list directory: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("expected seeded club directory")
	}
}

func TestApp_NewHTTPServer_ServesHealthz(t *testing.T) {
	a, err := New(context.Background(), testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer a.Close()

	srv, err := a.NewHTTPServer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("build server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected healthz status: got=%d want=%d", rec.Code, http.StatusOK)
	}
}

func TestApp_NewScheduler(t *testing.T) {
	cfg := testConfig()
	a, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer a.Close()

	s, err := a.NewScheduler()
	if err != nil {
		t.Fatalf("build scheduler: %v", err)
	}
	defer s.Stop()

	if got, want := s.JobNames(), []string{jobRankingsSync, jobRosterSync}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected jobs: got=%v want=%v", got, want)
	}

	cfg.SchedulerEnabled = false
	disabled, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	if s, err := disabled.NewScheduler(); err != nil || s != nil {
		t.Fatalf("expected no scheduler when disabled: s=%v err=%v", s, err)
	}
}
