package logging

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// SafeCloseWithLogging closes closer and logs a failure instead of returning it.
func SafeCloseWithLogging(closer io.Closer, logger *slog.Logger, operation string) {
	if closer == nil {
		return
	}

	if err := closer.Close(); err != nil {
		LogError(logger, "failed to close resource", err,
			slog.String("operation", operation),
			slog.String("component", "resource_management"))
	}
}

// SafeRollbackWithLogging is meant to be deferred right after BeginTx. A rollback after a
// successful commit reports sql.ErrTxDone, which is not logged.
func SafeRollbackWithLogging(tx interface{ Rollback() error }, logger *slog.Logger, operation string) {
	if tx == nil {
		return
	}

	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		LogError(logger, "failed to rollback transaction", err,
			slog.String("operation", operation),
			slog.String("component", "database"))
	}
}

// HandleDeferredError runs deferredOp and, if it fails, logs it and reports it through
// originalErr unless an earlier error is already set.
func HandleDeferredError(originalErr *error, deferredOp func() error, logger *slog.Logger, operation string) {
	if deferredOp == nil {
		return
	}

	err := deferredOp()
	if err == nil {
		return
	}

	LogError(logger, "deferred operation failed", err,
		slog.String("operation", operation),
		slog.String("component", "deferred_cleanup"))

	if *originalErr == nil {
		*originalErr = fmt.Errorf("%s failed: %w", operation, err)
	}
}
