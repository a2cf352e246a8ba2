// Package spinning provides a spinning symbol followed by a progress message, to use while
// a program is running a long batch of games.
package spinning

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"k8s.io/klog/v2"
)

// Spinning displays a spinning symbol and the latest message set.
type Spinning struct {
	out    io.Writer
	wg     sync.WaitGroup
	cancel func()

	mu      sync.Mutex
	message string
	idx     int
}

var (
	ThemeAscii = []rune("|/-\\")
	ThemeMoon  = []rune("🌑🌒🌓🌔🌕🌖🌗🌘")

	// Theme defaults to ThemeAscii, but it can be set to anything else before calling New.
	Theme = ThemeAscii

	// Period between updates of the display.
	Period = 250 * time.Millisecond
)

// SafeInterrupt captures SigInt (Ctrl+C) and SigTerm and calls the provided onInterrupt.
// If the program hasn't exited after gracePeriod, it resets the terminal and exits.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		Reset()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset() {
	fmt.Print("\033[?25h\033[39;49;0m\n")
}

// New starts the display on a separate goroutine, writing to out.
// It stops when Spinning.Done is called or ctx is cancelled.
func New(ctx context.Context, out io.Writer) *Spinning {
	s := &Spinning{out: out}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Period)
		defer ticker.Stop()
		// Hide the cursor while spinning.
		_, _ = fmt.Fprint(out, "\033[?25l")
		defer fmt.Fprint(out, "\033[?25h\n")
		for {
			s.draw()
			select {
			case <-ctx.Done():
				s.draw()
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

// SetMessage shown after the spinning symbol.
func (s *Spinning) SetMessage(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = fmt.Sprintf(format, args...)
}

func (s *Spinning) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	symbol := Theme[s.idx%len(Theme)]
	s.idx++
	// Carriage return, then clear to the end of line.
	_, _ = fmt.Fprintf(s.out, "\r%c %s\033[0K", symbol, s.message)
}

// Done stops the display and waits for it to finish.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}
