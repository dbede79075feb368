package office

import (
	"fmt"
	"time"
)

// Action identifies what a status event reports.
type Action string

// Status event actions.
const (
	ActionPowerOn  Action = "power_on"
	ActionPowerOff Action = "power_off"
	ActionPrint    Action = "print"
	ActionScan     Action = "scan"
)

// Event is one entry of a device's status stream.
type Event struct {
	Action   Action    `json:"action"`
	DeviceID string    `json:"device_id"`
	Time     time.Time `json:"time"`

	// FileName is set for print and scan events only.
	FileName string `json:"file_name,omitempty"`

	// Counter is the counter value after the action: the power-cycle count
	// for power events, the print or scan count otherwise.
	Counter int `json:"counter"`
}

// Line renders the event as a human-readable status line. Print and scan
// lines carry the timestamp formatted with layout.
func (e Event) Line(layout string) string {
	switch e.Action {
	case ActionPowerOn:
		return "Device is on ..."
	case ActionPowerOff:
		return "... Device is off !"
	case ActionPrint:
		return fmt.Sprintf("%s Print: %s", e.Time.Format(layout), e.FileName)
	case ActionScan:
		return fmt.Sprintf("%s Scan: %s", e.Time.Format(layout), e.FileName)
	default:
		return fmt.Sprintf("%s %s: %s", e.Time.Format(layout), e.Action, e.FileName)
	}
}

// Sink receives the status stream of one or more devices.
//
// Emit is called synchronously while the device lock is held, in the order
// the mutations happened. A returned error is logged by the device and never
// fails the device operation.
type Sink interface {
	Emit(e Event) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(e Event) error

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) error {
	return f(e)
}

// discardSink drops every event.
type discardSink struct{}

func (discardSink) Emit(Event) error { return nil }
