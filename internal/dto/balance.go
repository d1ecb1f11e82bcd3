package dto

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/splittab/splittab_backend/internal/core/domain"
	"github.com/splittab/splittab_backend/internal/utils"
)

// AccountBalanceResponse defines the derived net summary of one account.
type AccountBalanceResponse struct {
	AccountID          int                     `json:"accountID"`
	Balance            decimal.Decimal         `json:"balance"`
	FormattedBalance   string                  `json:"formattedBalance"`
	BeforeClearing     decimal.Decimal         `json:"beforeClearing"`
	TotalPaid          decimal.Decimal         `json:"totalPaid"`
	TotalConsumed      decimal.Decimal         `json:"totalConsumed"`
	ClearingResolution map[int]decimal.Decimal `json:"clearingResolution,omitempty"`
}

// ListBalancesResponse wraps a group's account balances, ordered by account id.
type ListBalancesResponse struct {
	Balances []AccountBalanceResponse `json:"balances"`
}

// ToListBalancesResponse converts an AccountBalanceMap to response DTOs with
// a deterministic order.
func ToListBalancesResponse(balances domain.AccountBalanceMap, currencySymbol string) ListBalancesResponse {
	res := make([]AccountBalanceResponse, 0, len(balances))
	for accountID, balance := range balances {
		entry := AccountBalanceResponse{
			AccountID:        int(accountID),
			Balance:          balance.Balance,
			FormattedBalance: utils.FormatWithSymbol(balance.Balance, currencySymbol),
			BeforeClearing:   balance.BeforeClearing,
			TotalPaid:        balance.TotalPaid,
			TotalConsumed:    balance.TotalConsumed,
		}
		if len(balance.ClearingResolution) > 0 {
			resolution := make(map[int]decimal.Decimal, len(balance.ClearingResolution))
			for id, portion := range balance.ClearingResolution {
				resolution[int(id)] = portion
			}
			entry.ClearingResolution = resolution
		}
		res = append(res, entry)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].AccountID < res[j].AccountID })
	return ListBalancesResponse{Balances: res}
}

// BalanceHistoryEntryResponse is one point of an account's balance trajectory.
type BalanceHistoryEntryResponse struct {
	Date         string              `json:"date"`
	Change       decimal.Decimal     `json:"change"`
	Balance      decimal.Decimal     `json:"balance"`
	ChangeOrigin domain.ChangeOrigin `json:"changeOrigin"`
}

// BalanceHistoryResponse wraps one account's ordered balance history.
type BalanceHistoryResponse struct {
	AccountID int                           `json:"accountID"`
	Entries   []BalanceHistoryEntryResponse `json:"entries"`
}

// ToBalanceHistoryResponse converts history entries to response DTOs.
func ToBalanceHistoryResponse(accountID domain.AccountID, entries []domain.BalanceHistoryEntry) BalanceHistoryResponse {
	res := make([]BalanceHistoryEntryResponse, len(entries))
	for i, entry := range entries {
		res[i] = BalanceHistoryEntryResponse{
			Date:         entry.Date.String(),
			Change:       entry.Change,
			Balance:      entry.Balance,
			ChangeOrigin: entry.ChangeOrigin,
		}
	}
	return BalanceHistoryResponse{AccountID: int(accountID), Entries: res}
}
