package office

// Powerable is implemented by every device.
type Powerable interface {
	// PowerOn switches the device on. Only an Off→On transition counts as a power cycle.
	PowerOn()

	// PowerOff switches the device off. Always allowed.
	PowerOff()

	// State returns the current power state.
	State() PowerState

	// Counter returns the number of Off→On transitions so far.
	Counter() int
}

// Printable is implemented by devices that can print.
type Printable interface {
	Powerable

	// Print prints doc if the device is on; otherwise it does nothing.
	// A nil doc while on returns ErrNilDocument.
	Print(doc *Document) error
}

// Scannable is implemented by devices that can scan.
type Scannable interface {
	Powerable

	// Scan produces a new document in format f if the device is on.
	// It returns a nil document and nil error while the device is off.
	Scan(f Format) (*Document, error)
}

// Faxable is implemented by devices that can send faxes.
type Faxable interface {
	Powerable

	// Send faxes doc if the device is on; otherwise it does nothing.
	Send(doc *Document) error
}

// MultiFunction is a device that is both a printer and a scanner on one
// shared power state.
type MultiFunction interface {
	Printable
	Scannable

	PrintCounter() int
	ScanCounter() int

	// ScanAndPrint scans an image and prints the result.
	ScanAndPrint() error
}

// Unit is a device that can be catalogued in a Registry.
type Unit interface {
	Powerable

	ID() string
	Name() string
	Kind() Kind
}

// Compile-time interface checks.
var (
	_ MultiFunction = (*Copier)(nil)
	_ Unit          = (*Copier)(nil)
)
