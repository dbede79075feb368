package status

import (
	"fmt"
	"io"
	"sync"

	"github.com/nerrad567/gray-logic-office/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-office/internal/office"
)

// ConsoleSink writes one status line per event.
type ConsoleSink struct {
	mu     sync.Mutex
	w      io.Writer
	layout string
}

// Console returns a sink writing status lines to w. An empty layout uses
// config.DefaultTimestampLayout (dd.MM.yyyy HH:mm:ss).
func Console(w io.Writer, layout string) *ConsoleSink {
	if layout == "" {
		layout = config.DefaultTimestampLayout
	}
	return &ConsoleSink{w: w, layout: layout}
}

// Emit writes e.Line followed by a newline.
func (s *ConsoleSink) Emit(e office.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintln(s.w, e.Line(s.layout)); err != nil {
		return fmt.Errorf("writing status line: %w", err)
	}
	return nil
}
