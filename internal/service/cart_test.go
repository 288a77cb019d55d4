package service_test

import (
	"context"
	"testing"

	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/internal/service"
	mocks "github.com/mealio/food-order-service/internal/service/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_GetCart(t *testing.T) {
	carts := mocks.NewMockCartStore(t)
	foods := mocks.NewMockFoodGetter(t)
	svc := service.NewCartService(discardLogger, carts, foods, decimal.NewFromInt(10))

	carts.EXPECT().ListCart(mock.Anything, "u").Return(entities.Cart{
		{FoodID: 1, UnitPrice: decimal.NewFromInt(50), Quantity: 2},
	}, nil)

	cart, summary, err := svc.GetCart(context.Background(), "u")
	require.NoError(t, err)
	assert.Len(t, cart, 1)
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(112)), "total = %s", summary.Total)
}

func TestCartService_AddItem(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		carts := mocks.NewMockCartStore(t)
		foods := mocks.NewMockFoodGetter(t)
		svc := service.NewCartService(discardLogger, carts, foods, decimal.NewFromInt(10))

		foods.EXPECT().GetFoodByID(mock.Anything, int64(1)).Return(entities.Food{ID: 1}, nil)
		carts.EXPECT().UpsertItem(mock.Anything, "u", int64(1), 2).Return(nil)

		assert.NoError(t, svc.AddItem(context.Background(), "u", 1, 2))
	})

	t.Run("unknown food", func(t *testing.T) {
		carts := mocks.NewMockCartStore(t)
		foods := mocks.NewMockFoodGetter(t)
		svc := service.NewCartService(discardLogger, carts, foods, decimal.NewFromInt(10))

		foods.EXPECT().GetFoodByID(mock.Anything, int64(42)).
			Return(entities.Food{}, entities.ErrFoodNotFound)

		err := svc.AddItem(context.Background(), "u", 42, 1)
		assert.ErrorIs(t, err, entities.ErrFoodNotFound)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		carts := mocks.NewMockCartStore(t)
		foods := mocks.NewMockFoodGetter(t)
		svc := service.NewCartService(discardLogger, carts, foods, decimal.NewFromInt(10))

		err := svc.AddItem(context.Background(), "u", 1, 0)
		assert.ErrorIs(t, err, service.ErrInvalidQuantity)
	})
}

func TestCartService_SetQuantity(t *testing.T) {
	carts := mocks.NewMockCartStore(t)
	foods := mocks.NewMockFoodGetter(t)
	svc := service.NewCartService(discardLogger, carts, foods, decimal.NewFromInt(10))

	carts.EXPECT().SetQuantity(mock.Anything, "u", int64(1), 0).Return(nil)

	// Ноль разрешён: позиция удаляется на уровне репозитория.
	assert.NoError(t, svc.SetQuantity(context.Background(), "u", 1, 0))
	assert.ErrorIs(t, svc.SetQuantity(context.Background(), "u", 1, -1), service.ErrInvalidQuantity)
}
