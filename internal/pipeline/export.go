package pipeline

import (
	"context"
	stderrors "errors"
	"log/slog"

	"perfgen/internal/sink"
	"perfgen/pkg/errors"
)

// Export writes the dataset's tables to s in order and then closes it. The
// sink is closed on every path; the first failure is returned.
func Export(ctx context.Context, d *Dataset, s sink.Sink) (err error) {
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = asIOError(cerr, "failed to finalize output", "")
		}
	}()

	for _, t := range d.Tables() {
		if cerr := ctx.Err(); cerr != nil {
			return errors.Wrap(cerr, errors.ErrCodeCancelled, "export cancelled").
				WithContext("table", t.Name)
		}
		if werr := s.WriteTable(t.Name, t.Columns, t.Rows); werr != nil {
			return asIOError(werr, "failed to write table "+t.Name, t.Name)
		}
		slog.Debug("table written", "table", t.Name, "rows", t.Len())
	}
	return nil
}

// asIOError keeps structured sink errors as they are and wraps anything else
// as a file write failure
func asIOError(err error, message, table string) error {
	var ae *errors.AppError
	if stderrors.As(err, &ae) {
		if table != "" {
			ae.WithContext("table", table)
		}
		return ae
	}
	wrapped := errors.Wrap(err, errors.ErrCodeFileWrite, message)
	if table != "" {
		wrapped.WithContext("table", table)
	}
	return wrapped
}
