package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor implements ports.DBTransactor.
type Transactor struct {
	pool Pool
	opts pgx.TxOptions
}

// NewTransactor creates a Transactor. Transactions run at READ COMMITTED;
// callback updates serialize on the recipient row lock rather than on
// isolation level.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
}

// Begin starts a new database transaction.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.BeginTx(ctx, t.opts)
}
