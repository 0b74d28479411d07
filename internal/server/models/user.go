package models

// User is the pseudonymous account created at registration. The username is
// generated, never chosen; the pin hash is supplied pre-hashed by the client.
type User struct {
	DeviceID string
	Username string
	PinHash  string
}
