package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/splittab/splittab_backend/internal/apperrors"
)

// TransactionType indicates what kind of money movement a transaction records.
type TransactionType string

const (
	// TransactionTypePurchase is an expense paid by one or more creditors and
	// consumed by one or more debitors.
	TransactionTypePurchase TransactionType = "purchase"
	// TransactionTypeTransfer moves money from one account to another.
	TransactionTypeTransfer TransactionType = "transfer"
)

// TransactionID identifies a transaction within a group. Occurrences of a
// recurring transaction share the id of their template transaction.
type TransactionID int

// Transaction records a single money movement within a group.
// Repeat holds an RFC-5545 RRULE string ("" means non-recurring) anchored at
// BilledAt. A transaction starts in the IsWip state while being edited and
// becomes immutable once committed.
type Transaction struct {
	ID             TransactionID   `json:"id"`
	GroupID        GroupID         `json:"groupID"`
	Type           TransactionType `json:"type"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Value          decimal.Decimal `json:"value"`
	CurrencySymbol string          `json:"currencySymbol"`
	BilledAt       Date            `json:"billedAt"`
	Repeat         string          `json:"repeat"`
	CreditorShares ShareMap        `json:"creditorShares"`
	DebitorShares  ShareMap        `json:"debitorShares"`
	Tags           []string        `json:"tags"`
	IsWip          bool            `json:"isWip"`
	Deleted        bool            `json:"deleted"`
	LastChanged    time.Time       `json:"lastChanged"`
}

// Validate checks the transaction's invariants: a non-negative value and
// well-formed share maps.
func (t Transaction) Validate() error {
	if t.Value.IsNegative() {
		return fmt.Errorf("%w: transaction %d value %s must not be negative", apperrors.ErrValidation, t.ID, t.Value)
	}
	if err := t.CreditorShares.Validate(); err != nil {
		return err
	}
	return t.DebitorShares.Validate()
}

// OccurrenceAt clones the transaction for one concrete occurrence of its
// recurrence rule. The clone keeps the template's id.
func (t Transaction) OccurrenceAt(billedAt Date) Transaction {
	occ := t
	occ.BilledAt = billedAt
	return occ
}

// HasAllTags reports whether every required tag is present on the transaction.
func (t Transaction) HasAllTags(required []string) bool {
	for _, want := range required {
		found := false
		for _, tag := range t.Tags {
			if tag == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
