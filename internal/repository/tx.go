package repository

import (
	"context"
	"fmt"

	"github.com/opsfin/invoice-engine/gen/ent"
)

// WithTx runs fn inside a transaction, committing on nil and rolling back on
// error or panic. Every processing attempt writes through exactly one of
// these scopes.
func WithTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}
