package status

import (
	"errors"

	"github.com/nerrad567/gray-logic-office/internal/office"
)

// MultiSink delivers each event to every sink in order.
type MultiSink struct {
	sinks []office.Sink
}

// Multi returns a sink fanning out to sinks. Nil sinks are skipped.
func Multi(sinks ...office.Sink) *MultiSink {
	m := &MultiSink{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Emit calls every sink, even after a failure, and joins their errors.
func (m *MultiSink) Emit(e office.Event) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Emit(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of sinks.
func (m *MultiSink) Len() int {
	return len(m.sinks)
}
