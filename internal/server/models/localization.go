package models

import "time"

// Localization is the single most recent reported position of a device.
// One row per device, last write wins, no history.
type Localization struct {
	DeviceID  string
	Latitude  float64
	Longitude float64
	UpdatedAt time.Time
}
