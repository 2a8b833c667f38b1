package services_test

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// fakeTx stands in for a pgx transaction. Repositories are mocked, so only
// Commit and Rollback are ever reached.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	if tx.committed {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

// fakeDB hands out a single fakeTx.
type fakeDB struct {
	tx       *fakeTx
	beginErr error
	begun    int
}

func newFakeDB() *fakeDB {
	return &fakeDB{tx: &fakeTx{}}
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	db.begun++
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	return db.tx, nil
}

var errDB = errors.New("db connection failed")
