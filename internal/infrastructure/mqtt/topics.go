package mqtt

import "fmt"

// Topic prefixes.
const (
	// TopicPrefix is the root of every office topic.
	TopicPrefix = "office"

	// TopicPrefixStatus is the base for per-device status events.
	TopicPrefixStatus = "office/status"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "office/system"
)

// Topics provides builders for office MQTT topics.
//
//	topic := mqtt.Topics{}.DeviceStatus("copier-1")
//	// Returns: "office/status/copier-1"
type Topics struct{}

// DeviceStatus returns the topic carrying the status events of one device.
//
// Example: office/status/copier-1
func (Topics) DeviceStatus(deviceID string) string {
	return fmt.Sprintf("%s/%s", TopicPrefixStatus, deviceID)
}

// AllDeviceStatus returns the wildcard matching every device status topic.
func (Topics) AllDeviceStatus() string {
	return TopicPrefixStatus + "/+"
}

// SystemStatus returns the retained online/offline topic of this process.
func (Topics) SystemStatus() string {
	return TopicPrefixSystem + "/status"
}
