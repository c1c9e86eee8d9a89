package domain

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusExpired   SubscriptionStatus = "EXPIRED"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionStatusTrial     SubscriptionStatus = "TRIAL"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusExpired, SubscriptionStatusCancelled, SubscriptionStatusTrial:
		return true
	default:
		return false
	}
}

type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	IntervalDays int      `json:"intervalDays"`
	Features     []string `json:"features,omitempty"`
}

// SubscriptionModel status is owned by the backend; nothing here moves it.
type SubscriptionModel struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Plan      Plan               `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate,omitempty"`
}
