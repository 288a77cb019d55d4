package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrFoodNotFound = errors.New("food not found")

type Food struct {
	ID          int64
	CategoryID  string
	Title       string
	Description string
	ImagePath   string
	Price       decimal.Decimal
	Star        float64
	TimeValue   int
	Calorie     int
	BestFood    bool
}
