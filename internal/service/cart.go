package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mealio/food-order-service/internal/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("invalid quantity")

type CartStore interface {
	ListCart(ctx context.Context, userID string) (entities.Cart, error)
	UpsertItem(ctx context.Context, userID string, foodID int64, quantity int) error
	SetQuantity(ctx context.Context, userID string, foodID int64, quantity int) error
	RemoveItem(ctx context.Context, userID string, foodID int64) error
}

type FoodGetter interface {
	GetFoodByID(ctx context.Context, id int64) (entities.Food, error)
}

type cartService struct {
	logger      *slog.Logger
	carts       CartStore
	foods       FoodGetter
	deliveryFee decimal.Decimal
}

func NewCartService(logger *slog.Logger, carts CartStore, foods FoodGetter, deliveryFee decimal.Decimal) *cartService {
	return &cartService{
		logger:      logger.With(slog.String("service", "cart")),
		carts:       carts,
		foods:       foods,
		deliveryFee: deliveryFee,
	}
}

// GetCart returns the cart together with its totals. Totals are derived on
// every read so any mutation is immediately reflected.
func (s *cartService) GetCart(ctx context.Context, userID string) (entities.Cart, entities.CartSummary, error) {
	cart, err := s.carts.ListCart(ctx, userID)
	if err != nil {
		return nil, entities.CartSummary{}, err
	}
	return cart, entities.Summarize(cart, s.deliveryFee), nil
}

func (s *cartService) AddItem(ctx context.Context, userID string, foodID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	// Reject ids that do not resolve to a catalog item.
	if _, err := s.foods.GetFoodByID(ctx, foodID); err != nil {
		return err
	}
	return s.carts.UpsertItem(ctx, userID, foodID, quantity)
}

func (s *cartService) SetQuantity(ctx context.Context, userID string, foodID int64, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	return s.carts.SetQuantity(ctx, userID, foodID, quantity)
}

func (s *cartService) RemoveItem(ctx context.Context, userID string, foodID int64) error {
	return s.carts.RemoveItem(ctx, userID, foodID)
}
