package domain

import (
	"fmt"
	"strings"

	"github.com/splittab/splittab_backend/internal/apperrors"
)

// TransactionSortMode enumerates the orderings the transaction list supports.
type TransactionSortMode string

const (
	SortByLastChanged TransactionSortMode = "lastChanged"
	SortByBilledAt    TransactionSortMode = "billedAt"
	SortByValue       TransactionSortMode = "value"
	SortByName        TransactionSortMode = "name"
	SortByDescription TransactionSortMode = "description"
)

// ParseTransactionSortMode validates a sort mode coming from the outside.
// An empty string defaults to sorting by billed date.
func ParseTransactionSortMode(s string) (TransactionSortMode, error) {
	switch TransactionSortMode(s) {
	case "":
		return SortByBilledAt, nil
	case SortByLastChanged, SortByBilledAt, SortByValue, SortByName, SortByDescription:
		return TransactionSortMode(s), nil
	default:
		return "", fmt.Errorf("%w: unknown sort mode %q", apperrors.ErrValidation, s)
	}
}

// GetTransactionSortFunc returns the comparator for a sort mode. Comparators
// return a negative number when a sorts before b, zero when the keys are
// equal. Equal keys must keep their relative input order, so callers are
// expected to sort stably. Unknown modes fall back to the billed-date order.
func GetTransactionSortFunc(mode TransactionSortMode) func(a, b *Transaction) int {
	switch mode {
	case SortByLastChanged:
		return compareLastChangedDesc
	case SortByValue:
		return func(a, b *Transaction) int {
			// largest amounts first
			return b.Value.Cmp(a.Value)
		}
	case SortByName:
		return func(a, b *Transaction) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case SortByDescription:
		return func(a, b *Transaction) int {
			return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
		}
	default:
		return compareBilledAtDesc
	}
}

// compareLastChangedDesc orders most recently changed first.
func compareLastChangedDesc(a, b *Transaction) int {
	return b.LastChanged.Compare(a.LastChanged)
}

// compareBilledAtDesc orders most recently billed first, ties broken by
// last change time.
func compareBilledAtDesc(a, b *Transaction) int {
	if c := b.BilledAt.Compare(a.BilledAt.Time); c != 0 {
		return c
	}
	return compareLastChangedDesc(a, b)
}
