package telemetry

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jask/navsync/internal/config"
	"github.com/jask/navsync/navigation"
)

func TestNewLoggerLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, config.LoggingConfig{Level: "warn", Format: "json"})

	log.Info().Msg("hidden")
	log.Warn().Str("handler", "stack").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, `"handler":"stack"`) || !strings.Contains(out, `"level":"warn"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navsync.log")
	log, closer, err := NewLogger(config.LoggingConfig{Level: "debug", Format: "console", Output: path})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Debug().Msg("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if log.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("level = %s", log.GetLevel())
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	_, _, err := NewLogger(config.LoggingConfig{Output: filepath.Join(t.TempDir(), "missing", "x.log")})
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestMetricsRecordsObserverEvents(t *testing.T) {
	m, err := NewMetrics(config.MetricsConfig{Enabled: true, Namespace: "test"})
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}

	m.ScreenCreated(navigation.KindStack)
	m.ScreenCreated(navigation.KindStack)
	m.Transition(navigation.KindModal, "present", true)
	m.ReverseSync(navigation.KindTab)
	wrapped := fmt.Errorf("wrapped: %w", &navigation.PresentationError{Op: "present", Err: navigation.ErrNotAttached})
	m.PresentationFailed(navigation.KindModal, wrapped)
	m.PresentationFailed(navigation.KindModal, errors.New("boom"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, want := range []string{
		`test_screens_created_total{kind="stack"} 2`,
		`test_transitions_total{animated="true",kind="modal",op="present"} 1`,
		`test_reverse_syncs_total{kind="tab"} 1`,
		`test_presentation_failures_total{kind="modal",reason="not_attached"} 1`,
		`test_presentation_failures_total{kind="modal",reason="other"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics endpoint missing %q:\n%s", want, body)
		}
	}
}

func TestDisabledMetricsAreNoop(t *testing.T) {
	m, err := NewMetrics(config.MetricsConfig{})
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}
	m.ScreenCreated(navigation.KindStack)
	m.Transition(navigation.KindStack, "set", false)
	m.ReverseSync(navigation.KindStack)
	m.PresentationFailed(navigation.KindModal, navigation.ErrNotAttached)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if err := m.Serve(t.Context()); err != nil {
		t.Fatalf("serve: %v", err)
	}
}
