package accounting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/splittab/splittab_backend/internal/core/domain"
	"github.com/splittab/splittab_backend/internal/utils/recurrence"
)

type balanceChange struct {
	date   domain.Date
	change decimal.Decimal
	origin domain.ChangeOrigin
}

// ComputeAccountBalanceHistory builds the chronologically ordered balance
// trajectory of one account: one delta per transaction occurrence the account
// takes part in (recurring transactions expanded up to now) plus one delta
// per clearing account that resolved part of its balance onto the account.
// Money flowing account -> clearing account -> account shows up once on each
// leg, never double counted.
//
// Recurrence parse failures degrade each affected transaction to its anchor
// date; the pure computation stays total and leaves logging to the caller.
func ComputeAccountBalanceHistory(
	accountID domain.AccountID,
	clearingAccounts []domain.Account,
	balances domain.AccountBalanceMap,
	transactions []domain.Transaction,
	effects map[domain.TransactionID]domain.TransactionBalanceEffect,
	now time.Time,
) []domain.BalanceHistoryEntry {
	changes := make([]balanceChange, 0, len(transactions))

	for _, txn := range transactions {
		if txn.Deleted {
			continue
		}
		effect, ok := effects[txn.ID]
		if !ok {
			continue
		}
		accountEffect, ok := effect[accountID]
		if !ok {
			continue
		}
		occurrences, _ := recurrence.Expand(txn.Repeat, txn.BilledAt.Time, now)
		for _, occurrence := range occurrences {
			changes = append(changes, balanceChange{
				date:   domain.DateOf(occurrence),
				change: accountEffect.Total,
				origin: domain.ChangeOrigin{Type: domain.ChangeOriginTransaction, ID: int(txn.ID)},
			})
		}
	}

	for _, account := range clearingAccounts {
		resolution := balances[account.ID].ClearingResolution
		portion, ok := resolution[accountID]
		if !ok || portion.IsZero() {
			continue
		}
		date := account.DateInfo
		if date.IsZero() {
			date = domain.DateOf(account.LastChanged)
		}
		changes = append(changes, balanceChange{
			date:   date,
			change: portion,
			origin: domain.ChangeOrigin{Type: domain.ChangeOriginClearing, ID: int(account.ID)},
		})
	}

	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].date.Before(changes[j].date.Time)
	})

	history := make([]domain.BalanceHistoryEntry, len(changes))
	running := decimal.Zero
	for i, change := range changes {
		running = running.Add(change.change)
		history[i] = domain.BalanceHistoryEntry{
			Date:         change.date,
			Change:       change.change,
			Balance:      running,
			ChangeOrigin: change.origin,
		}
	}
	return history
}
