package models

import "time"

// Message is an ephemeral, location-tagged post. Sender is a free-text label,
// deliberately not bound to an authenticated identity. Rows expire in storage
// after their TTL and are never updated or explicitly deleted.
type Message struct {
	MessageID string    `json:"messageId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}
