package services

import (
	"math"

	"github.com/blackmessages/backend/internal/shared"
)

func generateUsername() (string, error) {
	return shared.GenerateUsername()
}

func generateTransactionKey() (string, error) {
	return shared.MakeRandHexString(32)
}

// finite rejects NaN and ±Inf coordinates before they reach storage.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
