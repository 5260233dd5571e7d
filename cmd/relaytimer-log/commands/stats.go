package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/relaytimer/relaytimer-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Presses          map[log.Input]int
	Ignored          int
	Starts           int
	Pauses           int
	Expiries         int
	Overrides        int
	Errors           int
	Sessions         map[string]*SessionStats
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single process run.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Running   time.Duration

	runningSince time.Time
}

// Collect reads every event from path into a Stats.
func Collect(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Presses:          make(map[log.Input]int),
		Sessions:         make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	sess, ok := s.Sessions[event.SessionID]
	if !ok {
		sess = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Sessions[event.SessionID] = sess
	}
	sess.Events++
	if event.Timestamp.After(sess.LastSeen) {
		sess.LastSeen = event.Timestamp
	}

	switch {
	case event.Button != nil:
		if event.Button.Edge == "FALLING" {
			s.Presses[event.Button.Input]++
		}
		if event.Button.Ignored {
			s.Ignored++
		}

	case event.StateChange != nil:
		sc := event.StateChange
		switch {
		case sc.NewState == "RUNNING":
			s.Starts++
			sess.runningSince = event.Timestamp
		case sc.NewState == "PAUSED":
			s.Pauses++
		case sc.Reason == log.ReasonExpired:
			s.Expiries++
		case sc.Reason == log.ReasonMotorOverride:
			s.Overrides++
		}
		if sc.OldState == "RUNNING" && !sess.runningSince.IsZero() {
			sess.Running += event.Timestamp.Sub(sess.runningSince)
			sess.runningSince = time.Time{}
		}

	case event.Error != nil:
		s.Errors++
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Relay Timer Event Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryInput, log.CategoryState, log.CategoryCountdown, log.CategoryPhase, log.CategoryOutput, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Button Presses:")
	for _, in := range []log.Input{log.InputIncrement, log.InputStart, log.InputDecrement} {
		if count := stats.Presses[in]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", in.String()+":", count)
		}
	}
	if stats.Ignored > 0 {
		fmt.Fprintf(w, "  %-12s %d\n", "ignored:", stats.Ignored)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Runs:")
	fmt.Fprintf(w, "  %-12s %d\n", "started:", stats.Starts)
	fmt.Fprintf(w, "  %-12s %d\n", "paused:", stats.Pauses)
	fmt.Fprintf(w, "  %-12s %d\n", "expired:", stats.Expiries)
	if stats.Overrides > 0 {
		fmt.Fprintf(w, "  %-12s %d\n", "override:", stats.Overrides)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s, running %s\n",
				shortenID(s.id), s.stats.Events, duration, s.stats.Running.Round(time.Second))
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
