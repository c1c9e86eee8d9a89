package domain

type ActivityType string

const (
	ActivityTypeWarning ActivityType = "WARNING"
	ActivityTypeError   ActivityType = "ERROR"
	ActivityTypeInfo    ActivityType = "INFO"
	ActivityTypeSuccess ActivityType = "SUCCESS"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTypeWarning, ActivityTypeError, ActivityTypeInfo, ActivityTypeSuccess:
		return true
	default:
		return false
	}
}

type UserActivity struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	CreatedAt   string       `json:"createdAt"`
}

type NotificationRequest struct {
	UserID  string       `json:"userId"`
	Title   string       `json:"title"`
	Message string       `json:"message"`
	Type    ActivityType `json:"type"`
}

// Notification delivery state is reported by the backend, never computed here.
type Notification struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	Title       string       `json:"title"`
	Message     string       `json:"message"`
	Type        ActivityType `json:"type"`
	IsDelivered bool         `json:"isDelivered"`
	CreatedAt   string       `json:"createdAt"`
	DeliveredAt *string      `json:"deliveredAt,omitempty"`
}
