package dto

import (
	"time"

	"github.com/splittab/splittab_backend/internal/core/domain"
)

// GroupResponse defines the data returned for a group.
// Mirrors domain.Group.
type GroupResponse struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CurrencySymbol string    `json:"currencySymbol"`
	CreatedAt      time.Time `json:"createdAt"`
	LastChanged    time.Time `json:"lastChanged"`
}

// ToGroupResponse converts a domain.Group to GroupResponse DTO
func ToGroupResponse(group *domain.Group) GroupResponse {
	return GroupResponse{
		ID:             int(group.ID),
		Name:           group.Name,
		Description:    group.Description,
		CurrencySymbol: group.CurrencySymbol,
		CreatedAt:      group.CreatedAt,
		LastChanged:    group.LastChanged,
	}
}

// ToListGroupResponse converts a slice of domain.Group to GroupResponse DTOs
func ToListGroupResponse(groups []domain.Group) []GroupResponse {
	res := make([]GroupResponse, len(groups))
	for i, group := range groups {
		res[i] = ToGroupResponse(&group)
	}
	return res
}

// ListTagsResponse wraps a group's aggregated tag list.
type ListTagsResponse struct {
	Tags []string `json:"tags"`
}
