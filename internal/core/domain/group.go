package domain

import "time"

// GroupID identifies a group of people sharing expenses.
type GroupID int

// Group is the unit of sharing: members, accounts and transactions all hang
// off a group. The core treats a group snapshot as read-only input.
type Group struct {
	ID             GroupID   `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CurrencySymbol string    `json:"currencySymbol"`
	CreatedAt      time.Time `json:"createdAt"`
	LastChanged    time.Time `json:"lastChanged"`
}
