package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/splittab/splittab_backend/internal/core/domain"
	"github.com/splittab/splittab_backend/internal/utils"
)

// ListTransactionsQuery defines query parameters for the transaction list.
// SortMode is validated against the known sort modes; empty means the
// default (billed date) order.
type ListTransactionsQuery struct {
	SortMode   string   `form:"sortMode" binding:"omitempty,sortmode"`
	SearchTerm string   `form:"searchTerm"`
	Tags       []string `form:"tags"`
}

// TransactionResponse defines the data returned for one transaction
// occurrence. FormattedValue is the display rendering of Value; rounding
// happens only here.
type TransactionResponse struct {
	ID             int                     `json:"id"`
	Type           domain.TransactionType  `json:"type"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	Value          decimal.Decimal         `json:"value"`
	FormattedValue string                  `json:"formattedValue"`
	CurrencySymbol string                  `json:"currencySymbol"`
	BilledAt       string                  `json:"billedAt"`
	Repeat         string                  `json:"repeat"`
	CreditorShares map[int]decimal.Decimal `json:"creditorShares"`
	DebitorShares  map[int]decimal.Decimal `json:"debitorShares"`
	Tags           []string                `json:"tags"`
	IsWip          bool                    `json:"isWip"`
	LastChanged    time.Time               `json:"lastChanged"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             int(txn.ID),
		Type:           txn.Type,
		Name:           txn.Name,
		Description:    txn.Description,
		Value:          txn.Value,
		FormattedValue: utils.FormatWithSymbol(txn.Value, txn.CurrencySymbol),
		CurrencySymbol: txn.CurrencySymbol,
		BilledAt:       txn.BilledAt.String(),
		Repeat:         txn.Repeat,
		CreditorShares: toShareMap(txn.CreditorShares),
		DebitorShares:  toShareMap(txn.DebitorShares),
		Tags:           txn.Tags,
		IsWip:          txn.IsWip,
		LastChanged:    txn.LastChanged,
	}
}

// ToListTransactionResponse converts transaction occurrences to DTOs.
func ToListTransactionResponse(transactions []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
