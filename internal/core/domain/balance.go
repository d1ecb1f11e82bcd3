package domain

import "github.com/shopspring/decimal"

// BalanceEffect is the per-account decomposition of one transaction's impact:
// how much the account paid into the common pool (CommonCreditors), how much
// it owes from the shared pool (CommonDebitors), how much it owes from
// itemized positions (Positions), and the resulting signed total
// (paid minus owed). Purely derived, never persisted.
type BalanceEffect struct {
	CommonCreditors decimal.Decimal `json:"commonCreditors"`
	CommonDebitors  decimal.Decimal `json:"commonDebitors"`
	Positions       decimal.Decimal `json:"positions"`
	Total           decimal.Decimal `json:"total"`
}

// TransactionBalanceEffect maps each involved account to its balance effect
// for a single transaction.
type TransactionBalanceEffect map[AccountID]BalanceEffect

// AccountBalance is the aggregate over all of a group's transactions for one
// account. BeforeClearing is the balance prior to distributing clearing
// accounts; ClearingResolution records, for clearing accounts only, how their
// accumulated balance was distributed onto participant accounts.
type AccountBalance struct {
	Balance            decimal.Decimal               `json:"balance"`
	BeforeClearing     decimal.Decimal               `json:"beforeClearing"`
	TotalPaid          decimal.Decimal               `json:"totalPaid"`
	TotalConsumed      decimal.Decimal               `json:"totalConsumed"`
	ClearingResolution map[AccountID]decimal.Decimal `json:"clearingResolution,omitempty"`
}

// AccountBalanceMap holds the derived net summary for every account of a group.
type AccountBalanceMap map[AccountID]AccountBalance

// ChangeOriginType distinguishes what produced a balance history delta.
type ChangeOriginType string

const (
	// ChangeOriginTransaction marks a delta caused by a transaction occurrence.
	ChangeOriginTransaction ChangeOriginType = "transaction"
	// ChangeOriginClearing marks a delta caused by a clearing account
	// distributing its balance.
	ChangeOriginClearing ChangeOriginType = "clearing"
)

// ChangeOrigin identifies the transaction occurrence or clearing account that
// produced a balance history entry.
type ChangeOrigin struct {
	Type ChangeOriginType `json:"type"`
	ID   int              `json:"id"`
}

// BalanceHistoryEntry is one point of an account's balance trajectory:
// the running balance after applying Change on Date. Entries are emitted in
// ascending date order with recurring transactions expanded per occurrence.
type BalanceHistoryEntry struct {
	Date         Date            `json:"date"`
	Change       decimal.Decimal `json:"change"`
	Balance      decimal.Decimal `json:"balance"`
	ChangeOrigin ChangeOrigin    `json:"changeOrigin"`
}
