package application

import "github.com/bnema/merchant-cli/internal/domain"

type CustomerStatsView struct {
	UserID         string                     `json:"userId"`
	TotalCustomers int                        `json:"totalCustomers"`
	NewCustomers   int                        `json:"newCustomers"`
	Customers      []domain.CustomerMetaModel `json:"customers"`
	Message        string                     `json:"message,omitempty"`
}

// Result is what a create operation reports back to the caller.
type Result[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}
