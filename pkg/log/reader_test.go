package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var read []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
	return read
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), SessionID: "s-1", Category: CategoryInput},
		{Timestamp: time.Now(), SessionID: "s-2", Category: CategoryState},
		{Timestamp: time.Now(), SessionID: "s-3", Category: CategoryCountdown},
	}

	path := createTestLogFile(t, events)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}
	for i, id := range []string{"s-1", "s-2", "s-3"} {
		if read[i].SessionID != id {
			t.Errorf("event %d SessionID = %q, want %q", i, read[i].SessionID, id)
		}
	}
}

func TestFilteredReader(t *testing.T) {
	base := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, SessionID: "a", Category: CategoryInput, State: "STOPPED"},
		{Timestamp: base.Add(time.Second), SessionID: "a", Category: CategoryState, State: "RUNNING"},
		{Timestamp: base.Add(2 * time.Second), SessionID: "b", Category: CategoryCountdown, State: "RUNNING"},
		{Timestamp: base.Add(3 * time.Second), SessionID: "b", Category: CategoryState, State: "STOPPED"},
	}
	path := createTestLogFile(t, events)

	state := CategoryState
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"All", Filter{}, 4},
		{"Session", Filter{SessionID: "b"}, 2},
		{"Category", Filter{Category: &state}, 2},
		{"RunState", Filter{State: "RUNNING"}, 2},
		{"TimeRange", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"Combined", Filter{SessionID: "a", Category: &state}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer reader.Close()

			if got := len(readAll(t, reader)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.tlog")); err == nil {
		t.Error("expected error for missing file")
	}
}
