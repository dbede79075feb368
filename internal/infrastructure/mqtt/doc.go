// Package mqtt publishes device status events to an MQTT broker.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Topics
//
//	office/status/{device_id}   one JSON message per status event, not retained
//	office/system/status        retained online/offline state of this process
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	topic := mqtt.Topics{}.DeviceStatus("copier-1")
//	err = client.Publish(topic, payload, 1, false)
//
// TLS should be enabled (broker.tls) for anything beyond local development.
package mqtt
