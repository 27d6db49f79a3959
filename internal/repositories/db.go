package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/teaflask/internal/logger"
)

// TxGetter returns the transaction bound to the request context, if any.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	var ex sqlx.ExtContext = db
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			ex = tx
		}
	}
	return ex
}

// logQuery writes the query on a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// getOne runs a single-row select. A missing row yields (false, nil).
func getOne(ctx context.Context, ex sqlx.ExtContext, dest any, query string, args ...any) (bool, error) {
	err := sqlx.GetContext(ctx, ex, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		logQuery(query, args, nil, nil)
		return false, nil
	}
	logQuery(query, args, dest, err)
	if err != nil {
		return false, err
	}
	return true, nil
}

func count(ctx context.Context, ex sqlx.ExtContext, query string, args ...any) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, ex, &n, query, args...)
	logQuery(query, args, n, err)
	return n, err
}

func exec(ctx context.Context, ex sqlx.ExtContext, query string, args ...any) (int64, error) {
	res, err := ex.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	return rowsAffected, err
}

// nullableID maps a zero id to SQL NULL.
func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
