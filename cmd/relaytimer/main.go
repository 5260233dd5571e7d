// Command relaytimer runs the relay timer controller on simulated pins.
//
// The control loop polls the buttons, counts down once per second, cycles
// the relays while running and redraws the 16x2 display when the view
// changes. Buttons are pressed from the console or the TUI.
//
// Usage:
//
//	relaytimer [flags]
//
// Flags:
//
//	-config string      Configuration file path (.yaml, .yml or .toml)
//	-variant string     Output variant: relay-pair, single, motor
//	-policy string      Expiry policy: reset, hold
//	-ui string          User interface: console, tui, headless (default "console")
//	-event-log string   File path for event capture (CBOR format)
//	-log-level string   Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Relay pair with the interactive console
//	relaytimer
//
//	# Motor variant in the terminal UI, capturing events
//	relaytimer -variant motor -ui tui -event-log run.tlog
//
//	# Headless run from a config file
//	relaytimer -config /etc/relaytimer.yaml -ui headless -log-level debug
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/relaytimer/relaytimer-go/cmd/relaytimer/interactive"
	"github.com/relaytimer/relaytimer-go/cmd/relaytimer/tui"
	"github.com/relaytimer/relaytimer-go/pkg/board"
	"github.com/relaytimer/relaytimer-go/pkg/config"
	"github.com/relaytimer/relaytimer-go/pkg/lcd"
	tlog "github.com/relaytimer/relaytimer-go/pkg/log"
)

// UI modes.
const (
	UIConsole  = "console"
	UITUI      = "tui"
	UIHeadless = "headless"
)

// Flags holds the command-line settings.
type Flags struct {
	ConfigFile string
	Variant    string
	Policy     string
	UI         string
	EventLog   string
	LogLevel   string
}

var flags Flags

func init() {
	flag.StringVar(&flags.ConfigFile, "config", "", "Configuration file path (.yaml, .yml or .toml)")
	flag.StringVar(&flags.Variant, "variant", "", "Output variant: relay-pair, single, motor")
	flag.StringVar(&flags.Policy, "policy", "", "Expiry policy: reset, hold")
	flag.StringVar(&flags.UI, "ui", UIConsole, "User interface: console, tui, headless")
	flag.StringVar(&flags.EventLog, "event-log", "", "File path for event capture (CBOR format)")
	flag.StringVar(&flags.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()

	cfg, err := loadConfig(flags)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	switch flags.UI {
	case UIConsole, UITUI, UIHeadless:
	default:
		log.Fatalf("Invalid configuration: unknown ui %q", flags.UI)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			log.Printf("Received signal: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	// The console owns the terminal; everything else writes through it.
	var console *interactive.Console
	var out io.Writer = os.Stdout
	switch flags.UI {
	case UIConsole:
		console, err = interactive.New()
		if err != nil {
			log.Fatalf("Failed to start console: %v", err)
		}
		out = console.Stdout()
		log.SetOutput(console.Stderr())
	case UITUI:
		// The TUI draws the display itself; logs would corrupt the screen.
		out = io.Discard
		log.SetOutput(io.Discard)
	}
	logger := setupLogging(flags.LogLevel, out)

	sessionID := uuid.New().String()
	events, closeEvents, err := setupEvents(flags.EventLog, logger)
	if err != nil {
		log.Fatalf("Failed to create event logger: %v", err)
	}
	defer closeEvents()

	opts := board.Options{
		Config:      cfg,
		EventLogger: events,
		SessionID:   sessionID,
		Logger:      logger,
	}
	if flags.UI != UITUI {
		opts.Display = lcd.NewWriter(out)
		opts.Status = lcd.NewStatusWriter(out)
	}

	b, err := board.New(opts)
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}

	log.Printf("Relay timer (%s, session %s)", cfg.Variant, sessionID)
	if flags.EventLog != "" {
		log.Printf("Event capture to: %s", flags.EventLog)
	}

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- b.Run(ctx)
	}()

	switch flags.UI {
	case UIConsole:
		console.Run(ctx, cancel, b)
	case UITUI:
		if err := tui.Run(ctx, b); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		cancel()
	case UIHeadless:
		<-ctx.Done()
	}

	cancel()
	if err := <-loopErr; err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Control loop stopped: %v", err)
	}
	log.Println("Goodbye!")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(f Flags) (*config.Config, error) {
	cfg := config.Default()
	if f.ConfigFile != "" {
		var err error
		cfg, err = config.Load(f.ConfigFile)
		if err != nil {
			return nil, err
		}
	}

	if f.Variant != "" {
		v, err := config.ParseVariant(f.Variant)
		if err != nil {
			return nil, err
		}
		cfg.Variant = v
	}
	if f.Policy != "" {
		cfg.ExpiryPolicy = f.Policy
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(level string, w io.Writer) *slog.Logger {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// setupEvents builds the event sink: the capture file if requested, plus the
// debug log.
func setupEvents(path string, logger *slog.Logger) (tlog.Logger, func(), error) {
	adapter := tlog.NewSlogAdapter(logger)
	if path == "" {
		return adapter, func() {}, nil
	}

	fl, err := tlog.NewFileLogger(path)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := fl.Close(); err != nil {
			log.Printf("Error closing event log: %v", err)
		}
	}
	return tlog.NewMultiLogger(fl, adapter), closeFn, nil
}
