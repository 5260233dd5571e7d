// Package board runs the relay timer control loop on a pin bank.
//
// A Board wires a config.Config to simulated pins, a display and a status
// sink, and owns the single Controller. Run polls the controller at the
// configured interval until its context is cancelled:
//
//	b, _ := board.New(board.Options{Config: cfg, Display: lcd.NewWriter(os.Stdout)})
//	go b.Run(ctx)
//	b.Tap(board.LineStart, 150*time.Millisecond)
//
// # Boot
//
// Run drives every output safe, shows the welcome screen for the splash
// duration, then draws the first frame. Buttons are not read during the
// splash.
//
// # Concurrency
//
// The control loop and the user interface goroutine share the Board. All
// exported methods are safe for concurrent use; the controller itself is
// only touched with the board lock held.
package board
