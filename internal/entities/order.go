package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidOrder        = errors.New("invalid order")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrStatusNotCancelable = errors.New("order can no longer be cancelled")
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// CanTransitionTo reports whether the status workflow allows moving to next.
// Open orders (pending, processing) may advance; completed and cancelled are
// terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCompleted || next == StatusCancelled
	case StatusProcessing:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// Next suggests the following step in the normal fulfilment workflow.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case StatusPending:
		return StatusProcessing
	case StatusProcessing:
		return StatusCompleted
	}
	return s
}

func (s OrderStatus) Cancelable() bool {
	return s == StatusPending || s == StatusProcessing
}

type Order struct {
	ID            string
	UserID        string
	AddressID     string
	TotalPrice    decimal.Decimal
	Status        OrderStatus
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
	CancelledAt   time.Time

	Lines []OrderLine
}

// OrderLine freezes the unit price of one cart line at purchase time.
type OrderLine struct {
	ID        string
	OrderID   string
	FoodID    int64
	UnitPrice decimal.Decimal
	Quantity  int
}

// NewOrderID derives the order id from the creation instant and the owner.
// The id is assigned once and never changes.
func NewOrderID(at time.Time, userID string) string {
	return fmt.Sprintf("%d-%s", at.UnixMilli(), userID)
}

// OrderTime recovers the creation instant from the id's timestamp prefix.
func OrderTime(orderID string) (time.Time, bool) {
	prefix, _, ok := strings.Cut(orderID, "-")
	if !ok {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(millis), true
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderLine{})
}
