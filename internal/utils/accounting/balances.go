// Package accounting holds the pure balance computation engine: per
// transaction balance effects, per account aggregates with clearing account
// resolution, and per account balance histories. All functions are free of
// side effects and operate on one read-only group snapshot; amounts stay
// decimal throughout and are rounded only at display time.
package accounting

import (
	"github.com/shopspring/decimal"
	"github.com/splittab/splittab_backend/internal/core/domain"
)

// ComputeTransactionBalanceEffect derives, for every account touched by the
// transaction, how much it paid and how much it owes.
//
// The creditor side distributes the full transaction value by creditor
// weights. The debitor side distributes each itemized position's value by the
// position's own shares, and the remaining "shared" amount (transaction value
// minus the sum of position values) by the transaction-level debitor weights.
// Deleted positions contribute nothing.
func ComputeTransactionBalanceEffect(txn domain.Transaction, positions []domain.Position) domain.TransactionBalanceEffect {
	effects := make(domain.TransactionBalanceEffect)

	positionTotal := decimal.Zero
	for _, pos := range positions {
		if pos.Deleted {
			continue
		}
		positionTotal = positionTotal.Add(pos.Value)
		for accountID, portion := range pos.Shares.Distribute(pos.Value) {
			e := effects[accountID]
			e.Positions = e.Positions.Add(portion)
			effects[accountID] = e
		}
	}

	shared := txn.Value.Sub(positionTotal)
	for accountID, portion := range txn.DebitorShares.Distribute(shared) {
		e := effects[accountID]
		e.CommonDebitors = e.CommonDebitors.Add(portion)
		effects[accountID] = e
	}
	for accountID, portion := range txn.CreditorShares.Distribute(txn.Value) {
		e := effects[accountID]
		e.CommonCreditors = e.CommonCreditors.Add(portion)
		effects[accountID] = e
	}

	for accountID, e := range effects {
		e.Total = e.CommonCreditors.Sub(e.CommonDebitors).Sub(e.Positions)
		effects[accountID] = e
	}
	return effects
}

// ComputeAccountBalances aggregates all of a group's transactions into one
// signed net balance per account and then settles clearing accounts by
// distributing their accumulated balances along the clearing share graph.
//
// For any internally consistent transaction set (positive creditor and
// debitor weight totals everywhere) the resulting balances sum to zero.
// Effects referencing accounts missing from the snapshot are skipped; one bad
// reference must not blank the whole balance sheet. Deleted transactions are
// ignored.
func ComputeAccountBalances(
	accounts []domain.Account,
	transactions []domain.Transaction,
	positionsByTransaction map[domain.TransactionID][]domain.Position,
) domain.AccountBalanceMap {
	balances := make(domain.AccountBalanceMap, len(accounts))
	for _, account := range accounts {
		balances[account.ID] = domain.AccountBalance{}
	}

	for _, txn := range transactions {
		if txn.Deleted {
			continue
		}
		effects := ComputeTransactionBalanceEffect(txn, positionsByTransaction[txn.ID])
		for accountID, effect := range effects {
			balance, ok := balances[accountID]
			if !ok {
				// dangling account reference, skip this entry only
				continue
			}
			balance.TotalPaid = balance.TotalPaid.Add(effect.CommonCreditors)
			balance.TotalConsumed = balance.TotalConsumed.Add(effect.CommonDebitors).Add(effect.Positions)
			balance.Balance = balance.Balance.Add(effect.Total)
			balance.BeforeClearing = balance.Balance
			balances[accountID] = balance
		}
	}

	settleClearingAccounts(accounts, balances)
	return balances
}

// settleClearingAccounts distributes each clearing account's balance onto the
// accounts named in its clearing shares. Clearing accounts may distribute
// into other clearing accounts, so they are processed in dependency order;
// accounts on a share cycle keep their balance unresolved.
func settleClearingAccounts(accounts []domain.Account, balances domain.AccountBalanceMap) {
	clearing := make(map[domain.AccountID]domain.Account)
	for _, account := range accounts {
		if account.IsClearing() && !account.Deleted && len(account.ClearingShares) > 0 {
			clearing[account.ID] = account
		}
	}

	for _, id := range settlementOrder(clearing) {
		account := clearing[id]
		balance := balances[id]
		if balance.Balance.IsZero() {
			continue
		}
		resolution := make(map[domain.AccountID]decimal.Decimal)
		settled := decimal.Zero
		for targetID, portion := range account.ClearingShares.Distribute(balance.Balance) {
			target, ok := balances[targetID]
			if !ok {
				continue
			}
			target.Balance = target.Balance.Add(portion)
			balances[targetID] = target
			resolution[targetID] = portion
			settled = settled.Add(portion)
		}
		balance = balances[id]
		balance.Balance = balance.Balance.Sub(settled)
		balance.ClearingResolution = resolution
		balances[id] = balance
	}
}

// settlementOrder topologically sorts clearing accounts so that an account is
// settled before any clearing account it distributes into. Members of cycles
// never become ready and are left out.
func settlementOrder(clearing map[domain.AccountID]domain.Account) []domain.AccountID {
	indegree := make(map[domain.AccountID]int, len(clearing))
	for id := range clearing {
		indegree[id] = 0
	}
	for _, account := range clearing {
		for targetID := range account.ClearingShares {
			if _, ok := clearing[targetID]; ok {
				indegree[targetID]++
			}
		}
	}

	queue := make([]domain.AccountID, 0, len(clearing))
	for id, deg := range indegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]domain.AccountID, 0, len(clearing))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for targetID := range clearing[id].ClearingShares {
			if _, ok := clearing[targetID]; !ok {
				continue
			}
			indegree[targetID]--
			if indegree[targetID] == 0 {
				queue = append(queue, targetID)
			}
		}
	}
	return order
}
