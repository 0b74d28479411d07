package users

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

	scanStmt string
	scanArgs []any
	scanVals []any
	scanErr  error
}

func (f *fakeQuerier) Exec(ctx context.Context, stmt string, args ...any) error {
	f.execStmt = stmt
	f.execArgs = args
	return f.execErr
}

func (f *fakeQuerier) ScanRow(ctx context.Context, stmt string, dest []any, args ...any) error {
	f.scanStmt = stmt
	f.scanArgs = args
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

	u := &models.User{DeviceID: "d-1", Username: "abcd1234", PinHash: "hash"}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if !regexp.MustCompile(`(?s)INSERT\s+INTO\s+users`).MatchString(q.execStmt) {
		t.Fatalf("unexpected statement: %s", q.execStmt)
	}
	want := []any{"d-1", "abcd1234", "hash"}
	if !reflect.DeepEqual(q.execArgs, want) {
		t.Fatalf("unexpected args: %v", q.execArgs)
	}
}

func TestCreate_DBError(t *testing.T) {
	q := &fakeQuerier{execErr: errors.New("db down")}
	repo := NewCassandraRepository(q)

	err := repo.Create(context.Background(), &models.User{DeviceID: "d-1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByDeviceID_Found(t *testing.T) {
	q := &fakeQuerier{scanVals: []any{"d-1", "abcd1234", "hash"}}
	repo := NewCassandraRepository(q)

	got, err := repo.GetByDeviceID(context.Background(), "d-1")
	if err != nil {
		t.Fatalf("GetByDeviceID error: %v", err)
	}
	if got.DeviceID != "d-1" || got.Username != "abcd1234" || got.PinHash != "hash" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if !reflect.DeepEqual(q.scanArgs, []any{"d-1"}) {
		t.Fatalf("unexpected args: %v", q.scanArgs)
	}
}

func TestGetByDeviceID_NotFound(t *testing.T) {
	q := &fakeQuerier{scanErr: cqlx.ErrNoRows}
	repo := NewCassandraRepository(q)

	_, err := repo.GetByDeviceID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByDeviceID_DBError(t *testing.T) {
	q := &fakeQuerier{scanErr: errors.New("db err")}
	repo := NewCassandraRepository(q)

	_, err := repo.GetByDeviceID(context.Background(), "d-1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
