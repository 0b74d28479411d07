package repomanager

import (
	"context"

	"github.com/blackmessages/backend/internal/server/repositories/devices"
	"github.com/blackmessages/backend/internal/server/repositories/localizations"
	"github.com/blackmessages/backend/internal/server/repositories/messages"
	"github.com/blackmessages/backend/internal/server/repositories/users"
)

// RepositoryManager hands out the repositories bound to one shared storage
// handle. The handle is created once at startup, shared read-only across
// concurrent operations, and closed on shutdown.
type RepositoryManager interface {
	Users() users.Repository
	Devices() devices.Repository
	Localizations() localizations.Repository
	Messages() messages.Repository
	EnsureSchema(ctx context.Context) error
	Close()
}
