package models

// Device is the unit of authentication. TransactionKey is a rotating bearer
// secret: every successful login replaces it, so at most one valid key exists
// per device at any time.
type Device struct {
	DeviceID       string
	TransactionKey string
}
