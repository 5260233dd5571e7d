package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/relaytimer/relaytimer-go/pkg/log"
)

func TestViewFormatsEvents(t *testing.T) {
	path := createTestLogFile(t, sampleRun())

	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"2026-01-28T10:15:32.123456Z [session:3f2a9c1e] INPUT",
		"Input: START FALLING",
		"STOPPED -> RUNNING",
		"Reason: BUTTON",
		"Phase: 0  Outputs: LH",
		"Expired",
		"Reason: EXPIRED",
		"Input: DEC FALLING (ignored)",
		"00:02",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestViewFilterByCategory(t *testing.T) {
	path := createTestLogFile(t, sampleRun())
	cat := log.CategoryState

	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Category: &cat}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "INPUT") {
		t.Error("input events should be filtered out")
	}
	if got := strings.Count(output, "Reason:"); got != 2 {
		t.Errorf("expected 2 state changes, got %d", got)
	}
}

func TestViewFilterByState(t *testing.T) {
	path := createTestLogFile(t, sampleRun())

	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{State: "RUNNING"}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	if strings.Contains(buf.String(), "STOPPED  ") {
		t.Errorf("stopped events should be filtered out:\n%s", buf.String())
	}
	if got := strings.Count(buf.String(), "[session:"); got != 4 {
		t.Errorf("expected 4 running events, got %d", got)
	}
}

func TestViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView("/nonexistent/file.tlog", ViewFilter{}, &buf); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseFlags(t *testing.T) {
	c, err := ParseCategoryFlag("Countdown")
	if err != nil || c != log.CategoryCountdown {
		t.Errorf("ParseCategoryFlag(Countdown) = %v, %v", c, err)
	}
	if _, err := ParseCategoryFlag("frame"); err == nil {
		t.Error("expected error for unknown category")
	}

	s, err := ParseStateFlag("paused")
	if err != nil || s != "PAUSED" {
		t.Errorf("ParseStateFlag(paused) = %q, %v", s, err)
	}
	if _, err := ParseStateFlag("idle"); err == nil {
		t.Error("expected error for unknown state")
	}
}
