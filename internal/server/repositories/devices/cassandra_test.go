package devices

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"testing"

	"github.com/blackmessages/backend/internal/common"
	"github.com/blackmessages/backend/internal/cqlx"
	"github.com/blackmessages/backend/internal/server/models"
)

type fakeQuerier struct {
	execStmt string
	execArgs []any
	execErr  error

	scanVals []any
	scanErr  error
}

func (f *fakeQuerier) Exec(ctx context.Context, stmt string, args ...any) error {
	f.execStmt = stmt
	f.execArgs = args
	return f.execErr
}

func (f *fakeQuerier) ScanRow(ctx context.Context, stmt string, dest []any, args ...any) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	for i, v := range f.scanVals {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func (f *fakeQuerier) Query(ctx context.Context, stmt string, args ...any) cqlx.Iter {
	return nil
}

func TestCreate_Success(t *testing.T) {
	q := &fakeQuerier{}
	repo := NewCassandraRepository(q)

	d := &models.Device{DeviceID: "d-1", TransactionKey: "key-1"}
	if err := repo.Create(context.Background(), d); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !regexp.MustCompile(`(?s)INSERT\s+INTO\s+devices`).MatchString(q.execStmt) {
		t.Fatalf("unexpected statement: %s", q.execStmt)
	}
	if !reflect.DeepEqual(q.execArgs, []any{"d-1", "key-1"}) {
		t.Fatalf("unexpected args: %v", q.execArgs)
	}
}

func TestGet_Found(t *testing.T) {
	q := &fakeQuerier{scanVals: []any{"d-1", "key-1"}}
	repo := NewCassandraRepository(q)

	got, err := repo.Get(context.Background(), "d-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.DeviceID != "d-1" || got.TransactionKey != "key-1" {
		t.Fatalf("unexpected device: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	q := &fakeQuerier{scanErr: cqlx.ErrNoRows}
	repo := NewCassandraRepository(q)

	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestReplaceTransactionKey(t *testing.T) {
	q := &fakeQuerier{}
	repo := NewCassandraRepository(q)

	if err := repo.ReplaceTransactionKey(context.Background(), "d-1", "key-2"); err != nil {
		t.Fatalf("ReplaceTransactionKey error: %v", err)
	}
	if !regexp.MustCompile(`(?s)UPDATE\s+devices\s+SET\s+transaction_key`).MatchString(q.execStmt) {
		t.Fatalf("unexpected statement: %s", q.execStmt)
	}
	// key first, device id second
	if !reflect.DeepEqual(q.execArgs, []any{"key-2", "d-1"}) {
		t.Fatalf("unexpected args: %v", q.execArgs)
	}
}

func TestReplaceTransactionKey_DBError(t *testing.T) {
	q := &fakeQuerier{execErr: errors.New("db down")}
	repo := NewCassandraRepository(q)

	err := repo.ReplaceTransactionKey(context.Background(), "d-1", "key-2")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
