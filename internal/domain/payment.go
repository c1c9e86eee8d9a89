package domain

type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "paid"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPaid
}

type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "CARD"
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodNetBanking PaymentMethod = "NETBANKING"
	PaymentMethodWallet     PaymentMethod = "WALLET"
	PaymentMethodCashfree   PaymentMethod = "CASHFREE"
	PaymentMethodOther      PaymentMethod = "OTHER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetBanking,
		PaymentMethodWallet, PaymentMethodCashfree, PaymentMethodOther:
		return true
	default:
		return false
	}
}

// PaymentRequestModel is the outbound payload for payment link creation. It is
// sent as-is; the backend owns validation.
type PaymentRequestModel struct {
	UserID        string  `json:"userId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	CustomerName  string  `json:"customerName,omitempty"`
	CustomerEmail string  `json:"customerEmail,omitempty"`
	CustomerPhone string  `json:"customerPhone,omitempty"`
	Purpose       string  `json:"purpose,omitempty"`
	ExpiryTime    string  `json:"expiryTime,omitempty"`
	ReturnURL     string  `json:"returnUrl,omitempty"`
}

type PaymentLink struct {
	LinkID     string `json:"linkId"`
	LinkURL    string `json:"linkUrl"`
	Status     string `json:"status,omitempty"`
	ExpiryTime string `json:"expiryTime,omitempty"`
}

type PaymentModel struct {
	ID         string        `json:"id"`
	UserID     string        `json:"userId"`
	CustomerID CustomerID    `json:"customerId"`
	Amount     float64       `json:"amount"`
	Currency   string        `json:"currency"`
	Status     PaymentStatus `json:"status"`
	Method     PaymentMethod `json:"method"`
	// A payment recorded by hand has neither a link nor a gateway reference.
	PaymentLinkID *string `json:"paymentLinkId,omitempty"`
	ReferenceID   *string `json:"referenceId,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

func (p PaymentModel) HasPaymentLink() bool {
	return p.PaymentLinkID != nil && *p.PaymentLinkID != ""
}
