package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Spinner is an animated indicator for the export step
type Spinner struct {
	out     io.Writer
	frames  []string
	current int
	message string
	started time.Time
	stop    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
}

// NewSpinner creates a new spinner writing to w
func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{
		out:     w,
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the spinner animation
func (s *Spinner) Start() {
	s.started = time.Now()
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.mu.Lock()
				fmt.Fprintf(s.out, "\r%s %s %s",
					ColorProgress(s.frames[s.current]),
					s.message,
					strings.Repeat(" ", 20),
				)
				s.current = (s.current + 1) % len(s.frames)
				s.mu.Unlock()
			}
		}
	}()
}

// Stop stops the spinner and prints the final status with the elapsed time
func (s *Spinner) Stop(success bool, message string) {
	close(s.stop)
	<-s.done

	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprint(s.out, "\r\033[K")
	elapsed := ColorDim("(" + formatDuration(time.Since(s.started)) + ")")
	if success {
		fmt.Fprintf(s.out, "%s %s %s\n", ColorSuccess("✓"), message, elapsed)
	} else {
		fmt.Fprintf(s.out, "%s %s %s\n", ColorError("✗"), message, elapsed)
	}
}

// UpdateMessage updates the spinner message
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
