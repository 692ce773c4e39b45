package storage

import (
	"context"
	"errors"
	"fmt"
)

// Classify maps a backend failure onto the store error taxonomy.
// Deadline overruns become ErrTimeout; caller cancellation is passed through
// untouched; everything else is ErrUnavailable. The original error stays in
// the chain for logging.
//
// Drivers report an expired context in their own words, so the state of ctx
// is folded in before classifying.
func Classify(ctx context.Context, op string, err error) error {
	if err != nil && ctx != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrNotFound):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
}
