package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/splittab/splittab_backend/internal/core/domain"
)

// AccountResponse defines the data returned for an account.
// Clearing-only fields (tags, clearingShares, dateInfo) are omitted for
// personal accounts.
type AccountResponse struct {
	ID             int                     `json:"id"`
	Type           domain.AccountType      `json:"type"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	Tags           []string                `json:"tags,omitempty"`
	ClearingShares map[int]decimal.Decimal `json:"clearingShares,omitempty"`
	DateInfo       string                  `json:"dateInfo,omitempty"`
	IsWip          bool                    `json:"isWip"`
	LastChanged    time.Time               `json:"lastChanged"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(account *domain.Account) AccountResponse {
	res := AccountResponse{
		ID:          int(account.ID),
		Type:        account.Type,
		Name:        account.Name,
		Description: account.Description,
		Tags:        account.Tags,
		IsWip:       account.IsWip,
		LastChanged: account.LastChanged,
	}
	if len(account.ClearingShares) > 0 {
		res.ClearingShares = toShareMap(account.ClearingShares)
	}
	if !account.DateInfo.IsZero() {
		res.DateInfo = account.DateInfo.String()
	}
	return res
}

// ToListAccountResponse converts a slice of domain.Account to AccountResponse
// DTOs, skipping soft-deleted accounts.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		if account.Deleted {
			continue
		}
		res = append(res, ToAccountResponse(&account))
	}
	return res
}

func toShareMap(shares domain.ShareMap) map[int]decimal.Decimal {
	res := make(map[int]decimal.Decimal, len(shares))
	for id, weight := range shares {
		res[int(id)] = weight
	}
	return res
}
