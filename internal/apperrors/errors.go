package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// Share maps with negative weights surface this before any balance computation runs.
var ErrValidation = errors.New("validation error")

// ErrRecurrenceParse indicates a malformed RFC-5545 recurrence rule string.
// Callers recover by treating the transaction as non-recurring; the error is
// logged, never surfaced as a blocking failure.
var ErrRecurrenceParse = errors.New("recurrence rule parse error")

// ErrMissingReference indicates a share map references an account that is not
// part of the group snapshot. Treated as a display-time soft failure: the
// offending entry is skipped instead of aborting the whole computation.
var ErrMissingReference = errors.New("referenced account not found")
