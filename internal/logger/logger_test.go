package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSONOutsideDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", "production", &buf)

	log.Debug().Str("email", "a@x.com").Msg("signup attempt")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "debug" || entry["service"] != "lingo-backend" || entry["email"] != "a@x.com" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected timestamp field in %v", entry)
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("chatty", "production", &buf)

	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at info level, got %q", buf.String())
	}

	log.Info().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("info entry missing: %q", buf.String())
	}
}

func TestNew_ConsoleInDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "development", &buf)

	log.Info().Msg("server started")

	out := buf.String()
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("development output should not be JSON: %q", out)
	}
	if !strings.Contains(out, "server started") {
		t.Fatalf("message missing from console output: %q", out)
	}
}
