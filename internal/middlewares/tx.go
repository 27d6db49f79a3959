package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/teaflask/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction. The
// transaction is committed when the handler answers below 400 and rolled
// back otherwise, or when the handler panics.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			done := false
			finish := func(status int) int {
				if done {
					return status
				}
				done = true
				if status >= http.StatusBadRequest {
					if err := tx.Rollback(); err != nil {
						logger.Log.Errorw("failed to roll back transaction", "error", err)
					}
					return status
				}
				if err := tx.Commit(); err != nil {
					logger.Log.Errorw("failed to commit transaction", "error", err)
					return http.StatusInternalServerError
				}
				return status
			}

			defer func() {
				if rec := recover(); rec != nil {
					if !done {
						done = true
						tx.Rollback()
					}
					panic(rec)
				}
			}()

			rw := newResponseWriter(w)
			// Successful responses commit before the status is sent; a failed
			// commit becomes a 500.
			rw.beforeHeader = func(status int) int {
				if status < http.StatusBadRequest {
					return finish(status)
				}
				return status
			}

			ctx := setTxToContext(r.Context(), tx)
			next.ServeHTTP(rw, r.WithContext(ctx))

			if !rw.wroteHeader {
				// Nothing was written: the implicit status is 200.
				rw.WriteHeader(http.StatusOK)
			}
			finish(rw.statusCode)
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
