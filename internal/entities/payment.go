package entities

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentWallet PaymentMethod = "wallet"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentWallet
}

type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "success"
	PaymentCanceled  PaymentStatus = "canceled"
	PaymentFailed    PaymentStatus = "error"
)

// PaymentResult is the outcome of one external wallet payment attempt.
type PaymentResult struct {
	Status        PaymentStatus
	TransactionID string
	ErrorCode     string
}
