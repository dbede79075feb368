// Package office models office devices (printer, scanner, copier, fax) with
// power-state tracking and usage counters.
//
// # Capabilities
//
// Behaviour is split into small interfaces that a concrete device composes:
//
//   - Powerable: on/off state and the power-cycle counter
//   - Printable: Print a Document
//   - Scannable: Scan into a new Document
//   - Faxable: Send a Document (declared for fax devices; none is built yet)
//
// Every concrete device embeds one Device, which owns the power state, the
// single power-cycle counter, the status Sink and the lock. Capabilities are
// implemented against that shared state, so a Copier is printable and
// scannable without two copies of the state machine.
//
// # State machine
//
//	          PowerOn (+1 cycle)
//	   ┌─────┐ ───────────────▶ ┌────┐
//	   │ Off │                   │ On │ ◀── PowerOn (no change)
//	   └─────┘ ◀─────────────── └────┘
//	      ▲       PowerOff
//	      └── PowerOff (no change)
//
// Devices start Off. Print and Scan are silent no-ops while Off: no counter
// moves, no Document is produced and no Event is emitted.
//
// # Status stream
//
// Each power call and each successful print or scan emits one Event to the
// device's Sink. Sinks are injected with WithSink; see package status for
// console, log, journal, MQTT and InfluxDB implementations.
//
// # Usage
//
//	c := office.NewCopier("copier-1", office.WithSink(sink))
//	c.PowerOn()
//	doc, err := c.Scan(office.FormatPDF) // PDFScan1.pdf
//	if err != nil {
//	    return err
//	}
//	_ = c.Print(doc)
//
// # Thread Safety
//
// Device state and counters are guarded by a mutex, so concurrent callers
// never corrupt counters or obtain documents from a device that is Off.
// Sinks run while the lock is held and must not call back into the device.
package office
