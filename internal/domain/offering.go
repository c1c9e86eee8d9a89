package domain

// ServiceModel is an offering a merchant sells: a service, a class, a package.
type ServiceModel struct {
	ID              string  `json:"id,omitempty"`
	UserID          string  `json:"userId"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Category        string  `json:"category,omitempty"`
}
