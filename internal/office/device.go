package office

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// PowerState is the on/off state of a device.
type PowerState int

// Power states. The zero value is StateOff, so every device starts off.
const (
	StateOff PowerState = iota
	StateOn
)

// String returns "on" or "off".
func (s PowerState) String() string {
	if s == StateOn {
		return "on"
	}
	return "off"
}

// Kind classifies a concrete device type.
type Kind string

// Device kinds. Printer, scanner and fax are reserved for future devices.
const (
	KindCopier  Kind = "copier"
	KindPrinter Kind = "printer"
	KindScanner Kind = "scanner"
	KindFax     Kind = "fax"
)

// Logger defines the logging interface used by devices and the Registry.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Option configures a device at construction time.
type Option func(*Device)

// WithSink sets the status sink. A nil sink discards events.
func WithSink(s Sink) Option {
	return func(d *Device) {
		if s == nil {
			s = discardSink{}
		}
		d.sink = s
	}
}

// WithLogger sets the logger used to report sink failures.
func WithLogger(l Logger) Option {
	return func(d *Device) {
		if l == nil {
			l = noopLogger{}
		}
		d.logger = l
	}
}

// WithName sets a human-readable device name.
func WithName(name string) Option {
	return func(d *Device) {
		d.name = name
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *Device) {
		if now != nil {
			d.now = now
		}
	}
}

// GenerateID returns a new random device ID.
func GenerateID() string {
	return uuid.New().String()
}

// Device is the state machine shared by every concrete device: power state,
// the power-cycle counter, and the status sink.
//
// It is meant to be embedded; its lock also guards the counters of the
// embedding device.
type Device struct {
	mu sync.Mutex

	id   string
	name string
	kind Kind

	state  PowerState
	cycles int

	sink   Sink
	logger Logger
	now    func() time.Time
}

// init prepares an embedded Device. An empty id is replaced by a generated one.
func (d *Device) init(id string, kind Kind, opts []Option) {
	if id == "" {
		id = GenerateID()
	}
	d.id = id
	d.name = id
	d.kind = kind
	d.sink = discardSink{}
	d.logger = noopLogger{}
	d.now = time.Now

	for _, opt := range opts {
		opt(d)
	}
}

// ID returns the device identifier.
func (d *Device) ID() string {
	return d.id
}

// Name returns the device name (the ID unless WithName was given).
func (d *Device) Name() string {
	return d.name
}

// Kind returns the device kind.
func (d *Device) Kind() Kind {
	return d.kind
}

// PowerOn switches the device on. The power-cycle counter only moves on an
// Off→On transition; the on notification is emitted on every call.
func (d *Device) PowerOn() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateOff {
		d.cycles++
	}
	d.state = StateOn
	d.emit(Event{Action: ActionPowerOn, Counter: d.cycles})
}

// PowerOff switches the device off and emits the off notification.
func (d *Device) PowerOff() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = StateOff
	d.emit(Event{Action: ActionPowerOff, Counter: d.cycles})
}

// State returns the current power state.
func (d *Device) State() PowerState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Counter returns the number of Off→On transitions.
func (d *Device) Counter() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cycles
}

// isOn reports whether the device is on. Caller must hold d.mu.
func (d *Device) isOn() bool {
	return d.state == StateOn
}

// emit stamps e and hands it to the sink. Caller must hold d.mu.
func (d *Device) emit(e Event) {
	e.DeviceID = d.id
	e.Time = d.now()

	if err := d.sink.Emit(e); err != nil {
		d.logger.Warn("status sink failed",
			"device_id", d.id,
			"action", string(e.Action),
			"error", err,
		)
	}
}
