// Package repomanager wires the Cassandra session to the per-entity
// repositories and owns schema bootstrap.
package repomanager

import (
	"context"
	"fmt"
	"time"

	"github.com/gocql/gocql"

	"github.com/blackmessages/backend/internal/cqlx"
	"github.com/blackmessages/backend/internal/server/repositories/devices"
	"github.com/blackmessages/backend/internal/server/repositories/localizations"
	"github.com/blackmessages/backend/internal/server/repositories/messages"
	"github.com/blackmessages/backend/internal/server/repositories/users"
)

// Options describes how to reach the cluster.
type Options struct {
	Hosts           []string
	Keyspace        string
	LocalDatacenter string
	Username        string
	Password        string
}

type CassandraRepositoryManager struct {
	session       *cqlx.Session
	db            cqlx.Querier
	users         users.Repository
	devices       devices.Repository
	localizations localizations.Repository
	messages      messages.Repository
}

// NewCassandraRepositoryManager connects to the cluster and binds the
// repositories to the resulting session.
func NewCassandraRepositoryManager(opts Options) (*CassandraRepositoryManager, error) {
	cluster := gocql.NewCluster(opts.Hosts...)
	cluster.Keyspace = opts.Keyspace
	cluster.Consistency = gocql.LocalQuorum
	cluster.Timeout = 10 * time.Second

	if opts.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: opts.Username,
			Password: opts.Password,
		}
	}
	if opts.LocalDatacenter != "" {
		cluster.PoolConfig.HostSelectionPolicy =
			gocql.TokenAwareHostPolicy(gocql.DCAwareRoundRobinPolicy(opts.LocalDatacenter))
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("session error: %w", err)
	}

	s := cqlx.NewSession(session)
	m := NewFromQuerier(s)
	m.session = s
	return m, nil
}

// NewFromQuerier binds the repositories to an arbitrary querier. Used by
// tests and as the degraded mode when the cluster is unreachable at startup.
func NewFromQuerier(db cqlx.Querier) *CassandraRepositoryManager {
	return &CassandraRepositoryManager{
		db:            db,
		users:         users.NewCassandraRepository(db),
		devices:       devices.NewCassandraRepository(db),
		localizations: localizations.NewCassandraRepository(db),
		messages:      messages.NewCassandraRepository(db),
	}
}

func (m *CassandraRepositoryManager) Users() users.Repository { return m.users }

func (m *CassandraRepositoryManager) Devices() devices.Repository { return m.devices }

func (m *CassandraRepositoryManager) Localizations() localizations.Repository {
	return m.localizations
}

func (m *CassandraRepositoryManager) Messages() messages.Repository { return m.messages }

// EnsureSchema creates the tables if they do not exist yet. The keyspace is
// expected to exist already (it is provisioned with the cluster).
func (m *CassandraRepositoryManager) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			device_id text PRIMARY KEY,
			username text,
			pin_hash text
		)`,
		`CREATE TABLE IF NOT EXISTS devices (
			device_id text PRIMARY KEY,
			transaction_key text
		)`,
		`CREATE TABLE IF NOT EXISTS current_localizations (
			device_id text PRIMARY KEY,
			latitude double,
			longitude double,
			updated_at timestamp
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			message_id text PRIMARY KEY,
			sender text,
			content text,
			created_at timestamp,
			latitude double,
			longitude double
		)`,
	}

	for _, stmt := range statements {
		if err := m.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema error: %w", err)
		}
	}
	return nil
}

func (m *CassandraRepositoryManager) Close() {
	if m.session != nil {
		m.session.Close()
	}
}
