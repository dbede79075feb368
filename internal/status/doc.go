// Package status provides office.Sink implementations for the device
// status stream.
//
//   - Console: the human-readable line format, one line per event
//   - Log: structured log records
//   - Recorder: in-memory capture
//   - Multi: fan-out to several sinks
//   - Journal: rows in the SQLite status_events table
//   - MQTT: JSON messages on office/status/{device_id}
//   - Metrics: InfluxDB device_usage points
//
// Devices call Emit while holding their lock, so a sink must not call back
// into the device that emitted the event. Errors returned by Emit are logged
// by the device and never fail the device operation.
package status
