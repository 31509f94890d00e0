package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs(t *testing.T) {
	got := sanitizeKVs([]interface{}{"session_id", "abc", "Session_Token", "eyJ...", "cookie", "x", "dangling"})
	want := []interface{}{"session_id", "abc", "Session_Token", "[REDACTED]", "cookie", "[REDACTED]", "dangling"}
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kv[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestLoggerRedactsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "session").Info("issued", "token", "secret-value", "entries", 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["token"] != "[REDACTED]" {
		t.Fatalf("token field=%v", fields["token"])
	}
	if fields["component"] != "session" {
		t.Fatalf("component field=%v", fields["component"])
	}
	if fields["entries"] != int64(3) {
		t.Fatalf("entries field=%v (%T)", fields["entries"], fields["entries"])
	}
}

func TestNew(t *testing.T) {
	for _, mode := range []string{"development", "production"} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q) error: %v", mode, err)
		}
		l.Debug("hello")
	}
	Nop().Info("discarded")
}
