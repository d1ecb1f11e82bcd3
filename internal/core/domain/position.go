package domain

import "github.com/shopspring/decimal"

// PositionID identifies an itemized line item, scoped to its transaction.
type PositionID int

// Position is an itemized sub-line of a purchase with its own value and share
// distribution among a subset of the transaction's debitors. The sum of
// position values plus the implicit shared "rest" reconciles to the
// transaction's total value; that reconciliation happens in the balance
// computation, not here.
type Position struct {
	ID            PositionID      `json:"id"`
	TransactionID TransactionID   `json:"transactionID"`
	Name          string          `json:"name"`
	Value         decimal.Decimal `json:"value"`
	Shares        ShareMap        `json:"shares"`
	Deleted       bool            `json:"deleted"`
}
