package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	t.Run("level from env", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		if got := New().GetLevel(); got != logrus.DebugLevel {
			t.Fatalf("expected debug level, got %s", got)
		}
	})

	t.Run("unparseable level falls back to info", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		if got := New().GetLevel(); got != logrus.InfoLevel {
			t.Fatalf("expected info level, got %s", got)
		}
	})
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(&buf)

	LogError(log, "usecase", "notifyReadyForPickup", "pickup notification dispatch", 7, errors.New("webhook down"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["module"] != "usecase" || entry["funcName"] != "notifyReadyForPickup" {
		t.Fatalf("missing caller fields: %v", entry)
	}
	if entry["msg"] != "webhook down" {
		t.Fatalf("expected error message, got %v", entry["msg"])
	}
	if entry["data"] != float64(7) {
		t.Fatalf("expected data field, got %v", entry["data"])
	}
}
