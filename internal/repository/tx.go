package repository

import (
	"context"
	"database/sql"
)

// Tx is an explicit transaction handle. Repositories obtained from it run inside the transaction.
// Exactly one of Commit or Rollback must be called; Rollback after Commit is a no-op.
type Tx interface {
	Diaries() DiaryRepository
	Summaries() DiarySummaryRepository
	Commit() error
	Rollback() error
}

type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}

type sqlTxManager struct {
	db *sql.DB
}

func NewTxManager(db *sql.DB) TxManager {
	return &sqlTxManager{db: db}
}

func (m *sqlTxManager) Begin(ctx context.Context) (Tx, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqlTx{
		tx:        tx,
		diaries:   NewDiaryRepository(tx),
		summaries: NewDiarySummaryRepository(tx),
	}, nil
}

type sqlTx struct {
	tx        *sql.Tx
	diaries   DiaryRepository
	summaries DiarySummaryRepository
}

func (t *sqlTx) Diaries() DiaryRepository          { return t.diaries }
func (t *sqlTx) Summaries() DiarySummaryRepository { return t.summaries }
func (t *sqlTx) Commit() error                     { return t.tx.Commit() }

func (t *sqlTx) Rollback() error {
	err := t.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}
