package db

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestConfigDSN(t *testing.T) {
	t.Run("Discrete", func(t *testing.T) {
		cfg := Config{Host: "db", Port: 5433, User: "u", Password: "p", DBName: "rent", SSLMode: "disable"}
		assert.Equal(t, "host=db port=5433 user=u password=p dbname=rent sslmode=disable", cfg.DSN())
	})

	t.Run("URLWins", func(t *testing.T) {
		cfg := Config{URL: "postgres://x@y/z", Host: "ignored"}
		assert.Equal(t, "postgres://x@y/z", cfg.DSN())
	})
}

type fakeTx struct {
	rollbackErr error
	committed   bool
}

func (f *fakeTx) Commit() error   { f.committed = true; return nil }
func (f *fakeTx) Rollback() error { return f.rollbackErr }

func TestCommitAndRollbackHelpers(t *testing.T) {
	tx := &fakeTx{rollbackErr: errors.New("boom")}

	assert.NoError(t, CommitTx(tx))
	assert.True(t, tx.committed)
	assert.NotPanics(t, func() { RollbackTx(tx) })
}

// *sqlx.DB and *sqlx.Tx must keep satisfying the interfaces services depend on.
var (
	_ DBTxBeginner = (*sqlx.DB)(nil)
	_ TxController = (*sqlx.Tx)(nil)
)
