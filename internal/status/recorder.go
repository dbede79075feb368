package status

import (
	"sync"

	"github.com/nerrad567/gray-logic-office/internal/office"
)

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []office.Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit appends e.
func (r *Recorder) Emit(e office.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Events returns a copy of the recorded events in emission order.
func (r *Recorder) Events() []office.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]office.Event(nil), r.events...)
}

// Lines renders the recorded events as status lines.
func (r *Recorder) Lines(layout string) []string {
	events := r.Events()
	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = e.Line(layout)
	}
	return lines
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
