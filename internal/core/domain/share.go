package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/splittab/splittab_backend/internal/apperrors"
)

// ShareMap maps an account to a non-negative weight describing its share of a
// transaction's value. For a purchase the creditor side is normally a single
// payer with weight 1, the debitor side the cost-sharing weights among the
// consumers. An empty map means "unassigned".
type ShareMap map[AccountID]decimal.Decimal

// NewShareMap builds a validated share map from raw weights.
// Negative weights are rejected, never clamped.
func NewShareMap(weights map[AccountID]decimal.Decimal) (ShareMap, error) {
	s := make(ShareMap, len(weights))
	for id, w := range weights {
		s[id] = w
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that no weight is negative.
func (s ShareMap) Validate() error {
	for id, w := range s {
		if w.IsNegative() {
			return fmt.Errorf("%w: share weight %s for account %d must not be negative", apperrors.ErrValidation, w, id)
		}
	}
	return nil
}

// TotalWeight returns the sum of all weights.
func (s ShareMap) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, w := range s {
		total = total.Add(w)
	}
	return total
}

// Distribute splits value proportionally among the accounts: account i
// receives value * w_i / Σw. A zero total weight attributes the value to no
// account at all; that is a designed edge case, not an error. Zero-weight
// entries are omitted from the result.
func (s ShareMap) Distribute(value decimal.Decimal) map[AccountID]decimal.Decimal {
	total := s.TotalWeight()
	portions := make(map[AccountID]decimal.Decimal, len(s))
	if total.IsZero() {
		return portions
	}
	for id, w := range s {
		if w.IsZero() {
			continue
		}
		portions[id] = value.Mul(w).Div(total)
	}
	return portions
}
