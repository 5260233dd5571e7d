// Package interactive provides the readline console for relaytimer.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/relaytimer/relaytimer-go/pkg/board"
	"github.com/relaytimer/relaytimer-go/pkg/hal"
)

// DefaultHold is how long a console button press is held.
const DefaultHold = 150 * time.Millisecond

// Console handles interactive mode for relaytimer.
type Console struct {
	rl   *readline.Instance
	hold time.Duration
}

// New creates a console bound to the terminal.
func New() (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "timer> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("inc"),
			readline.PcItem("start"),
			readline.PcItem("dec"),
			readline.PcItem("hold"),
			readline.PcItem("motor",
				readline.PcItem("stall"),
				readline.PcItem("status"),
			),
			readline.PcItem("status"),
			readline.PcItem("pins"),
			readline.PcItem("show"),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Console{rl: rl, hold: DefaultHold}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for display and log output to avoid interfering with the prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (c *Console) Stderr() io.Writer {
	return c.rl.Stderr()
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc, b *board.Board) {
	defer c.rl.Close()

	cmds := &Commands{Out: c.rl.Stdout(), Board: b, Hold: c.hold}
	cmds.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		if quit := cmds.Execute(line); quit {
			cancel()
			return
		}
	}
}

// Commands executes console commands against a board.
type Commands struct {
	Out   io.Writer
	Board *board.Board
	Hold  time.Duration
}

// Execute runs one command line. It reports whether the user asked to quit.
func (c *Commands) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()

	case "inc", "i", "+":
		c.tap(board.LineIncrement)

	case "start", "s", "e":
		c.tap(board.LineStart)

	case "dec", "d", "-":
		c.tap(board.LineDecrement)

	case "hold", "h":
		c.cmdHold(args)

	case "motor", "m":
		c.cmdMotor(args)

	case "status", "st":
		c.Board.RequestStatus()

	case "pins", "p":
		c.cmdPins()

	case "show":
		c.cmdShow()

	case "quit", "exit", "q":
		fmt.Fprintln(c.Out, "Exiting...")
		return true

	default:
		fmt.Fprintf(c.Out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (c *Commands) tap(l board.Line) {
	hold := c.Hold
	if hold == 0 {
		hold = DefaultHold
	}
	if err := c.Board.Tap(l, hold); err != nil {
		fmt.Fprintf(c.Out, "Error: %v\n", err)
	}
}

// cmdHold presses a line for the given number of milliseconds.
func (c *Commands) cmdHold(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.Out, "Usage: hold <inc|start|dec> <ms>")
		return
	}
	ms, err := strconv.Atoi(args[1])
	if err != nil || ms <= 0 {
		fmt.Fprintf(c.Out, "Invalid duration: %s\n", args[1])
		return
	}
	if err := c.Board.Tap(board.Line(strings.ToLower(args[0])), time.Duration(ms)*time.Millisecond); err != nil {
		fmt.Fprintf(c.Out, "Error: %v\n", err)
	}
}

func (c *Commands) cmdMotor(args []string) {
	m := c.Board.Motor()
	if m == nil {
		fmt.Fprintln(c.Out, "No motor on this variant")
		return
	}

	sub := "status"
	if len(args) > 0 {
		sub = strings.ToLower(args[0])
	}
	switch sub {
	case "stall":
		m.Stall()
		fmt.Fprintln(c.Out, "Motor stalled")
	case "status":
		if m.Running() {
			fmt.Fprintln(c.Out, "Motor: running")
		} else {
			fmt.Fprintln(c.Out, "Motor: stopped")
		}
	default:
		fmt.Fprintln(c.Out, "Usage: motor [stall|status]")
	}
}

func (c *Commands) cmdPins() {
	snap := c.Board.Snapshot()
	for _, name := range c.Board.Bank().Names() {
		level := snap.Pins[name]
		marker := ""
		if level == hal.Active {
			marker = "  *"
		}
		fmt.Fprintf(c.Out, "  %-8s %-4s%s\n", name, level, marker)
	}
}

func (c *Commands) cmdShow() {
	snap := c.Board.Snapshot()
	fmt.Fprintf(c.Out, "State:     %s\n", snap.State)
	fmt.Fprintf(c.Out, "Remaining: %s (%d s)\n", snap.View.Clock(), snap.Remaining)
	fmt.Fprintf(c.Out, "Phase:     %d\n", snap.Phase)
	if snap.Pending {
		fmt.Fprintln(c.Out, "Pulse:     pending")
	}
}

func (c *Commands) printHelp() {
	fmt.Fprintln(c.Out, `
Commands:
  inc, i, +           Press the increment button
  start, s, e         Press the start/pause button
  dec, d, -           Press the decrement button (no effect)
  hold <line> <ms>    Hold a button for a given time
  motor [stall|status]
                      Stall the motor or show its state (motor variant)
  status, st          Print the status line
  pins, p             Show all pin levels (* = active)
  show                Show controller state
  help, ?             Show this help
  quit, exit, q       Exit`)
}
