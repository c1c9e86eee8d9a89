package domain

type CustomerID string

type CustomerBasicInfo struct {
	Name   string `json:"name,omitempty"`
	Mobile string `json:"mobile,omitempty"`
	Email  string `json:"email,omitempty"`
}

// CustomerModel is a customer record as the backend returns it. BasicInfo is
// optional: customers created from a bare payment may not carry contact data.
type CustomerModel struct {
	CustomerID CustomerID         `json:"customerID"`
	UserID     string             `json:"userId"`
	BasicInfo  *CustomerBasicInfo `json:"basicInfo,omitempty"`
	CreatedAt  string             `json:"createdAt,omitempty"`
}

// CustomerMetaModel is the flattened projection used for list displays.
type CustomerMetaModel struct {
	CustomerID string `json:"customerID"`
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
	CreatedAt  string `json:"createdAt"`
}

type CustomerStatsRequest struct {
	UserID string `json:"userId"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
}

type CustomerStats struct {
	TotalCustomers int             `json:"totalCustomers"`
	NewCustomers   int             `json:"newCustomers"`
	Customers      []CustomerModel `json:"customers"`
}
