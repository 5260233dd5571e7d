package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/relaytimer/relaytimer-go/pkg/log"
)

// RunExport exports the log file to the specified format.
// An empty output writes to w.
func RunExport(path, format, output string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "category", "state", "remaining", "detail"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := []string{
			event.Timestamp.UTC().Format(timeFormat),
			event.SessionID,
			event.Category.String(),
			event.State,
			strconv.Itoa(event.Remaining),
			detail(event),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

// detail summarizes the event payload in one field.
func detail(event log.Event) string {
	switch {
	case event.Button != nil:
		s := event.Button.Input.String() + " " + event.Button.Edge
		if event.Button.Ignored {
			s += " ignored"
		}
		return s
	case event.StateChange != nil:
		return fmt.Sprintf("%s->%s %s", event.StateChange.OldState, event.StateChange.NewState, event.StateChange.Reason)
	case event.Countdown != nil:
		if event.Countdown.Expired {
			return "expired"
		}
		return ""
	case event.Phase != nil:
		return fmt.Sprintf("phase %d %s", event.Phase.Phase, event.Phase.Outputs)
	case event.Output != nil:
		return event.Output.Line + " " + event.Output.Level
	case event.Error != nil:
		return event.Error.Component + ": " + event.Error.Message
	default:
		return ""
	}
}
