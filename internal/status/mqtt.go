package status

import (
	"encoding/json"
	"fmt"

	"github.com/nerrad567/gray-logic-office/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-office/internal/office"
)

// Publisher is the part of mqtt.Client the MQTT sink needs.
type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// MQTTSink publishes each event as JSON on the device's status topic.
type MQTTSink struct {
	pub Publisher
	qos byte
}

// MQTT returns a sink publishing through pub with the given QoS.
// Messages are not retained.
func MQTT(pub Publisher, qos byte) *MQTTSink {
	return &MQTTSink{pub: pub, qos: qos}
}

// Emit publishes e to office/status/{device_id}.
func (s *MQTTSink) Emit(e office.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding status event: %w", err)
	}
	if err := s.pub.Publish(mqtt.Topics{}.DeviceStatus(e.DeviceID), payload, s.qos, false); err != nil {
		return fmt.Errorf("publishing status event: %w", err)
	}
	return nil
}
