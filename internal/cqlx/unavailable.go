package cqlx

import "context"

// Unavailable is a Querier whose every operation fails with the bootstrap
// error. The app installs it when the cluster cannot be reached at startup,
// so the process keeps serving and each storage-dependent operation fails
// until connectivity is restored by a restart.
type Unavailable struct {
	Err error
}

func (u *Unavailable) Exec(ctx context.Context, stmt string, args ...any) error {
	return u.Err
}

func (u *Unavailable) ScanRow(ctx context.Context, stmt string, dest []any, args ...any) error {
	return u.Err
}

func (u *Unavailable) Query(ctx context.Context, stmt string, args ...any) Iter {
	return &errIter{err: u.Err}
}

type errIter struct {
	err error
}

func (i *errIter) Scan(dest ...any) bool { return false }
func (i *errIter) Close() error          { return i.err }
