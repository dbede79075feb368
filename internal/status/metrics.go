package status

import (
	"time"

	"github.com/nerrad567/gray-logic-office/internal/office"
)

// PointWriter is the part of influxdb.Client the metrics sink needs.
type PointWriter interface {
	WriteUsage(deviceID, action string, counter int, ts time.Time)
}

// MetricsSink writes one device_usage point per event.
type MetricsSink struct {
	w PointWriter
}

// Metrics returns a sink writing usage points through w.
func Metrics(w PointWriter) *MetricsSink {
	return &MetricsSink{w: w}
}

// Emit queues a point. Writes are asynchronous, so Emit never fails.
func (s *MetricsSink) Emit(e office.Event) error {
	s.w.WriteUsage(e.DeviceID, string(e.Action), e.Counter, e.Time)
	return nil
}
