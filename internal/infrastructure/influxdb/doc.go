// Package influxdb writes device usage counters to InfluxDB.
//
// It wraps the official influxdb-client-go v2 library. Each print, scan and
// power event becomes one point in the device_usage measurement, tagged with
// device_id and action and carrying the counter value after the action.
//
// # Usage
//
//	client, err := influxdb.Connect(ctx, cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	client.WriteUsage("copier-1", "print", 4, time.Now())
//
// Writes are non-blocking and batched according to batch_size and
// flush_interval. Asynchronous write errors are delivered to the callback
// set with SetOnError.
package influxdb
