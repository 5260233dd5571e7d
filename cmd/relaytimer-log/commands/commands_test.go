package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/relaytimer/relaytimer-go/pkg/log"
)

var ts = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// sampleRun is one start, one tick and an expiry.
func sampleRun() []log.Event {
	const session = "3f2a9c1e-7b4d-4e8a-9c0f-1a2b3c4d5e6f"
	return []log.Event{
		{
			Timestamp: ts, SessionID: session, Category: log.CategoryInput, State: "STOPPED", Remaining: 2,
			Button: &log.ButtonEvent{Input: log.InputStart, Edge: "FALLING"},
		},
		{
			Timestamp: ts, SessionID: session, Category: log.CategoryState, State: "RUNNING", Remaining: 2,
			StateChange: &log.StateChangeEvent{OldState: "STOPPED", NewState: "RUNNING", Reason: log.ReasonButton},
		},
		{
			Timestamp: ts, SessionID: session, Category: log.CategoryPhase, State: "RUNNING", Remaining: 2,
			Phase: &log.PhaseEvent{Phase: 0, Outputs: "LH"},
		},
		{
			Timestamp: ts.Add(time.Second), SessionID: session, Category: log.CategoryCountdown, State: "RUNNING", Remaining: 1,
			Countdown: &log.CountdownEvent{Remaining: 1},
		},
		{
			Timestamp: ts.Add(2 * time.Second), SessionID: session, Category: log.CategoryCountdown, State: "RUNNING", Remaining: 0,
			Countdown: &log.CountdownEvent{Remaining: 0, Expired: true},
		},
		{
			Timestamp: ts.Add(2 * time.Second), SessionID: session, Category: log.CategoryState, State: "STOPPED", Remaining: 0,
			StateChange: &log.StateChangeEvent{OldState: "RUNNING", NewState: "STOPPED", Reason: log.ReasonExpired},
		},
		{
			Timestamp: ts.Add(3 * time.Second), SessionID: session, Category: log.CategoryInput, State: "STOPPED", Remaining: 2,
			Button: &log.ButtonEvent{Input: log.InputDecrement, Edge: "FALLING", Ignored: true},
		},
	}
}
