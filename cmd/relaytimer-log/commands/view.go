// Package commands implements the relaytimer-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/relaytimer/relaytimer-go/pkg/log"
	"github.com/relaytimer/relaytimer-go/pkg/run"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category *log.Category
	State    string
}

const timeFormat = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] CATEGORY STATE MM:SS
	ts := event.Timestamp.UTC().Format(timeFormat)
	fmt.Fprintf(w, "%s [session:%s] %-9s %-7s %s\n",
		ts, shortenID(event.SessionID), event.Category, event.State, formatRemaining(event.Remaining))

	switch {
	case event.Button != nil:
		formatButtonDetails(w, event.Button)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Countdown != nil:
		if event.Countdown.Expired {
			fmt.Fprintln(w, "  Expired")
		}
	case event.Phase != nil:
		fmt.Fprintf(w, "  Phase: %d  Outputs: %s\n", event.Phase.Phase, event.Phase.Outputs)
	case event.Output != nil:
		fmt.Fprintf(w, "  Line: %s -> %s\n", event.Output.Line, event.Output.Level)
	case event.Error != nil:
		fmt.Fprintf(w, "  Component: %s\n", event.Error.Component)
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatRemaining(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func formatButtonDetails(w io.Writer, b *log.ButtonEvent) {
	fmt.Fprintf(w, "  Input: %s %s", b.Input, b.Edge)
	if b.Ignored {
		fmt.Fprint(w, " (ignored)")
	}
	fmt.Fprintln(w)
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return log.ParseCategory(s)
}

// ParseStateFlag parses a run state name (case-insensitive) into the form
// stored in events.
func ParseStateFlag(s string) (string, error) {
	st, ok := run.ParseState(strings.ToUpper(s))
	if !ok {
		return "", fmt.Errorf("invalid state: %s (must be stopped, running, or paused)", s)
	}
	return st.String(), nil
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		Category: filter.Category,
		State:    filter.State,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
