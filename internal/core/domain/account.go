package domain

import "time"

// AccountType distinguishes real people from virtual clearing accounts.
type AccountType string

const (
	// AccountTypePersonal is an account belonging to a group member.
	AccountTypePersonal AccountType = "personal"
	// AccountTypeClearing is a virtual account used to net out group-internal
	// transfers without attributing them to a person.
	AccountTypeClearing AccountType = "clearing"
)

// AccountID identifies an account within a group.
type AccountID int

// Account represents a balance-carrying party within a group.
// Tags, ClearingShares and DateInfo are only meaningful for clearing accounts:
// ClearingShares describes how the clearing account's accumulated balance is
// distributed back onto participant accounts, DateInfo is the date that
// distribution is attributed to in balance histories.
type Account struct {
	ID             AccountID   `json:"id"`
	GroupID        GroupID     `json:"groupID"`
	Type           AccountType `json:"type"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Tags           []string    `json:"tags,omitempty"`
	ClearingShares ShareMap    `json:"clearingShares,omitempty"`
	DateInfo       Date        `json:"dateInfo,omitzero"`
	Deleted        bool        `json:"deleted"`
	IsWip          bool        `json:"isWip"`
	LastChanged    time.Time   `json:"lastChanged"`
}

// IsClearing reports whether the account is a virtual clearing account.
func (a Account) IsClearing() bool {
	return a.Type == AccountTypeClearing
}
