package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// UsageMeasurement is the measurement name for device usage points.
const UsageMeasurement = "device_usage"

// UsagePoint builds the point recorded for one device action.
//
// Tags are device_id and action; the single field is the counter value after
// the action.
func UsagePoint(deviceID, action string, counter int, ts time.Time) *write.Point {
	return write.NewPoint(
		UsageMeasurement,
		map[string]string{
			"device_id": deviceID,
			"action":    action,
		},
		map[string]interface{}{
			"counter": counter,
		},
		ts,
	)
}

// WriteUsage queues a device usage point. Dropped silently when disconnected.
//
//	client.WriteUsage("copier-1", "scan", 3, time.Now())
func (c *Client) WriteUsage(deviceID, action string, counter int, ts time.Time) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(UsagePoint(deviceID, action, counter, ts))
}

// WritePoint queues a custom point stamped with the current time.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(write.NewPoint(measurement, tags, fields, time.Now()))
}
