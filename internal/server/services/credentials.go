// Package services contains the server-side business logic. This file
// implements CredentialService: pseudonymous registration, login with
// transaction-key rotation, and the authentication gate used by privileged
// operations.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/blackmessages/backend/internal/common"
	"github.com/blackmessages/backend/internal/server/models"
	"github.com/blackmessages/backend/internal/server/repositories/devices"
	"github.com/blackmessages/backend/internal/server/repositories/users"
)

// Registration is what a freshly registered caller receives: a generated
// pseudonym, a device identity, and the first transaction key.
type Registration struct {
	Username       string
	DeviceID       string
	TransactionKey string
}

// LoginResult carries the pseudonym and the freshly rotated transaction key.
type LoginResult struct {
	Username       string
	TransactionKey string
}

type CredentialService struct {
	users   users.Repository
	devices devices.Repository
}

func NewCredentialService(u users.Repository, d devices.Repository) *CredentialService {
	return &CredentialService{users: u, devices: d}
}

// Register creates a User and Device pair. The username is generated from a
// fixed low-entropy alphabet (a throwaway pseudonym, not a secret), the
// device ID is a fresh UUID, and the transaction key is a random bearer
// secret. The Device row is written first; a failure on either write
// surfaces as an error, never as a silent partial success. Cross-table
// atomicity is not promised.
func (s *CredentialService) Register(ctx context.Context, pinHash string) (*Registration, error) {
	if pinHash == "" {
		return nil, common.ErrorInvalidInput
	}

	username, err := generateUsername()
	if err != nil {
		return nil, common.ErrorInternal
	}
	transactionKey, err := generateTransactionKey()
	if err != nil {
		return nil, common.ErrorInternal
	}
	deviceID := uuid.NewString()

	device := &models.Device{DeviceID: deviceID, TransactionKey: transactionKey}
	if err := s.devices.Create(ctx, device); err != nil {
		return nil, fmt.Errorf("error creating device: %w", err)
	}

	user := &models.User{DeviceID: deviceID, Username: username, PinHash: pinHash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &Registration{
		Username:       username,
		DeviceID:       deviceID,
		TransactionKey: transactionKey,
	}, nil
}

// Login verifies the supplied pin hash against the stored one and, on
// success, rotates the device's transaction key. The new key invalidates any
// previously issued key for that device: logging in anywhere revokes access
// everywhere else. Unknown device and wrong pin are indistinguishable to the
// caller.
func (s *CredentialService) Login(ctx context.Context, deviceID, pinHash string) (*LoginResult, error) {
	if deviceID == "" || pinHash == "" {
		return nil, common.ErrorInvalidInput
	}

	user, err := s.users.GetByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if subtle.ConstantTimeCompare([]byte(user.PinHash), []byte(pinHash)) != 1 {
		return nil, common.ErrorUnauthorized
	}

	transactionKey, err := generateTransactionKey()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.devices.ReplaceTransactionKey(ctx, deviceID, transactionKey); err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{Username: user.Username, TransactionKey: transactionKey}, nil
}

// Authenticate admits a caller presenting the device's current transaction
// key. The key has no expiry of its own; it stays valid until the next login
// rotates it. "Device not found" and "key mismatch" are deliberately
// indistinguishable to avoid leaking which devices exist.
func (s *CredentialService) Authenticate(ctx context.Context, deviceID, transactionKey string) error {
	if deviceID == "" || transactionKey == "" {
		return common.ErrorInvalidInput
	}

	device, err := s.devices.Get(ctx, deviceID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return common.ErrorInternal
	}

	if subtle.ConstantTimeCompare([]byte(device.TransactionKey), []byte(transactionKey)) != 1 {
		return common.ErrorUnauthorized
	}

	return nil
}
