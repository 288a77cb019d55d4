package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/internal/service"
	mocks "github.com/mealio/food-order-service/internal/service/mocks"
	txMocks "github.com/mealio/food-order-service/pkg/trm/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// passthrough makes the mocked transaction manager run the callback so the
// repo expectations inside the transaction are exercised.
var passthrough = func(ctx context.Context, cb func(ctx context.Context) error) error {
	return cb(ctx)
}

type orderSvc interface {
	PlaceOrder(ctx context.Context, userID, addressID string, method entities.PaymentMethod) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderDetails(ctx context.Context, userID, orderID string) (service.OrderWithAddress, error)
	CancelOrder(ctx context.Context, userID, orderID string) error
	ChangeStatus(ctx context.Context, orderID string, next entities.OrderStatus) error
}

func newOrderService(
	t *testing.T,
) (*mocks.MockOrderRepo, *mocks.MockCartRepo, *mocks.MockAddressGetter, *mocks.MockCache, *mocks.MockEventPublisher, *txMocks.MockManager, orderSvc) {
	orders := mocks.NewMockOrderRepo(t)
	carts := mocks.NewMockCartRepo(t)
	addresses := mocks.NewMockAddressGetter(t)
	cache := mocks.NewMockCache(t)
	publisher := mocks.NewMockEventPublisher(t)
	txm := txMocks.NewMockManager(t)

	svc := service.NewOrderService(discardLogger, txm, orders, carts, addresses, cache, publisher, decimal.NewFromInt(10))
	return orders, carts, addresses, cache, publisher, txm, svc
}

func TestOrderService_PlaceOrder(t *testing.T) {
	userID := "user-1"
	cart := entities.Cart{
		{FoodID: 1, Title: "pho", UnitPrice: decimal.NewFromInt(50), Quantity: 2},
		{FoodID: 2, Title: "banh mi", UnitPrice: decimal.NewFromInt(30), Quantity: 1},
	}
	dbError := errors.New("db error")

	t.Run("OK", func(t *testing.T) {
		orders, carts, _, cache, publisher, txm, svc := newOrderService(t)

		carts.EXPECT().ListCart(mock.Anything, userID).Return(cart, nil)
		txm.EXPECT().Do(mock.Anything, mock.Anything).Return(passthrough)
		orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
		orders.EXPECT().SaveLines(mock.Anything, mock.Anything).Return(nil)
		carts.EXPECT().ClearCart(mock.Anything, userID).Return(nil)
		cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
		publisher.EXPECT().PublishOrderEvent(mock.Anything, "order.placed", mock.Anything).Return(nil)

		order, err := svc.PlaceOrder(context.Background(), userID, "addr-1", entities.PaymentCash)
		require.NoError(t, err)

		assert.Equal(t, userID, order.UserID)
		assert.Equal(t, "addr-1", order.AddressID)
		assert.Equal(t, entities.StatusProcessing, order.Status)
		assert.Equal(t, entities.PaymentCash, order.PaymentMethod)
		assert.Len(t, order.Lines, 2)
		// subtotal 130, tax 2.6, delivery 10
		assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("142.6")),
			"total = %s", order.TotalPrice)
		for _, line := range order.Lines {
			assert.Equal(t, order.ID, line.OrderID)
			assert.NotEmpty(t, line.ID)
		}
	})

	t.Run("empty cart writes nothing", func(t *testing.T) {
		_, carts, _, _, _, _, svc := newOrderService(t)

		carts.EXPECT().ListCart(mock.Anything, userID).Return(entities.Cart{}, nil)

		_, err := svc.PlaceOrder(context.Background(), userID, "addr-1", entities.PaymentCash)
		assert.ErrorIs(t, err, entities.ErrEmptyCart)
	})

	t.Run("all lines and cart clear share one transaction", func(t *testing.T) {
		orders, carts, _, cache, publisher, txm, svc := newOrderService(t)

		carts.EXPECT().ListCart(mock.Anything, userID).Return(cart, nil)
		txm.EXPECT().Do(mock.Anything, mock.Anything).Once().Return(passthrough)
		orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
		orders.EXPECT().SaveLines(mock.Anything, mock.MatchedBy(func(lines []entities.OrderLine) bool {
			return len(lines) == 2
		})).Return(nil)
		carts.EXPECT().ClearCart(mock.Anything, userID).Return(nil)
		cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
		publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := svc.PlaceOrder(context.Background(), userID, "addr-1", entities.PaymentWallet)
		require.NoError(t, err)
	})

	t.Run("retry works (first attempt fails, second succeeds)", func(t *testing.T) {
		orders, carts, _, cache, publisher, txm, svc := newOrderService(t)

		carts.EXPECT().ListCart(mock.Anything, userID).Return(cart, nil)
		txm.EXPECT().Do(mock.Anything, mock.Anything).Return(passthrough)
		orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Once().Return(dbError)
		orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Once().Return(nil)
		orders.EXPECT().SaveLines(mock.Anything, mock.Anything).Return(nil)
		carts.EXPECT().ClearCart(mock.Anything, userID).Return(nil)
		cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
		publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := svc.PlaceOrder(context.Background(), userID, "addr-1", entities.PaymentCash)
		require.NoError(t, err)
	})

	t.Run("publish failure does not fail the order", func(t *testing.T) {
		orders, carts, _, cache, publisher, txm, svc := newOrderService(t)

		carts.EXPECT().ListCart(mock.Anything, userID).Return(cart, nil)
		txm.EXPECT().Do(mock.Anything, mock.Anything).Return(passthrough)
		orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
		orders.EXPECT().SaveLines(mock.Anything, mock.Anything).Return(nil)
		carts.EXPECT().ClearCart(mock.Anything, userID).Return(nil)
		cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
		publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("kafka down"))

		_, err := svc.PlaceOrder(context.Background(), userID, "addr-1", entities.PaymentCash)
		assert.NoError(t, err)
	})
}

func TestOrderService_GetOrderByID(t *testing.T) {
	t.Run("cache hit skips repo", func(t *testing.T) {
		order := entities.Order{ID: "1-user", UserID: "user", Status: entities.StatusProcessing}
		data, err := order.Marshal()
		require.NoError(t, err)

		_, _, _, cache, _, _, svc := newOrderService(t)
		cache.EXPECT().Get("1-user").Return(data, true)

		got, err := svc.GetOrderByID(context.Background(), "1-user")
		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		orders, _, _, cache, _, _, svc := newOrderService(t)
		cache.EXPECT().Get("missing").Return(nil, false)
		orders.EXPECT().GetOrderByID(mock.Anything, "missing").Once().
			Return(entities.Order{}, entities.ErrOrderNotFound)

		_, err := svc.GetOrderByID(context.Background(), "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	testCases := []struct {
		name    string
		order   entities.Order
		userID  string
		expect  func(orders *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher)
		wantErr error
	}{
		{
			name:   "OK",
			order:  entities.Order{ID: "1-u", UserID: "u", Status: entities.StatusPending},
			userID: "u",
			expect: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockEventPublisher) {
				orders.EXPECT().UpdateStatus(mock.Anything, "1-u", entities.StatusCancelled, mock.Anything).Return(nil)
				cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
				publisher.EXPECT().PublishOrderEvent(mock.Anything, "order.status_changed", mock.Anything).Return(nil)
			},
		},
		{
			name:    "foreign order looks like a missing one",
			order:   entities.Order{ID: "1-u", UserID: "someone-else", Status: entities.StatusPending},
			userID:  "u",
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "completed order cannot be cancelled",
			order:   entities.Order{ID: "1-u", UserID: "u", Status: entities.StatusCompleted},
			userID:  "u",
			wantErr: entities.ErrStatusNotCancelable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders, _, _, cache, publisher, _, svc := newOrderService(t)
			orders.EXPECT().GetOrderByID(mock.Anything, tc.order.ID).Return(tc.order, nil)
			if tc.expect != nil {
				tc.expect(orders, cache, publisher)
			}

			err := svc.CancelOrder(context.Background(), tc.userID, tc.order.ID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_ChangeStatus(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		orders, _, _, cache, publisher, _, svc := newOrderService(t)
		orders.EXPECT().GetOrderByID(mock.Anything, "1-u").
			Return(entities.Order{ID: "1-u", Status: entities.StatusProcessing}, nil)
		orders.EXPECT().UpdateStatus(mock.Anything, "1-u", entities.StatusCompleted, mock.Anything).Return(nil)
		cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
		publisher.EXPECT().PublishOrderEvent(mock.Anything, "order.status_changed", mock.Anything).Return(nil)

		assert.NoError(t, svc.ChangeStatus(context.Background(), "1-u", entities.StatusCompleted))
	})

	t.Run("terminal order rejects transitions", func(t *testing.T) {
		orders, _, _, _, _, _, svc := newOrderService(t)
		orders.EXPECT().GetOrderByID(mock.Anything, "1-u").
			Return(entities.Order{ID: "1-u", Status: entities.StatusCancelled}, nil)

		err := svc.ChangeStatus(context.Background(), "1-u", entities.StatusProcessing)
		assert.ErrorIs(t, err, entities.ErrInvalidStatus)
	})
}

func TestOrderService_GetOrderDetails(t *testing.T) {
	order := entities.Order{ID: "1-u", UserID: "u", AddressID: "addr-1", Status: entities.StatusProcessing}
	address := entities.Address{ID: "addr-1", Street: "Nguyen Hue 1"}

	t.Run("address attached", func(t *testing.T) {
		orders, _, addresses, cache, _, _, svc := newOrderService(t)
		cache.EXPECT().Get("1-u").Return(nil, false)
		orders.EXPECT().GetOrderByID(mock.Anything, "1-u").Return(order, nil)
		cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
		addresses.EXPECT().GetByID(mock.Anything, "addr-1").Return(address, nil)

		got, err := svc.GetOrderDetails(context.Background(), "u", "1-u")
		require.NoError(t, err)
		require.NotNil(t, got.Address)
		assert.Equal(t, "addr-1", got.Address.ID)
	})

	t.Run("deleted address is tolerated", func(t *testing.T) {
		orders, _, addresses, cache, _, _, svc := newOrderService(t)
		cache.EXPECT().Get("1-u").Return(nil, false)
		orders.EXPECT().GetOrderByID(mock.Anything, "1-u").Return(order, nil)
		cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
		addresses.EXPECT().GetByID(mock.Anything, "addr-1").
			Return(entities.Address{}, entities.ErrAddressNotFound)

		got, err := svc.GetOrderDetails(context.Background(), "u", "1-u")
		require.NoError(t, err)
		assert.Nil(t, got.Address)
	})

	t.Run("foreign order is not found", func(t *testing.T) {
		orders, _, _, cache, _, _, svc := newOrderService(t)
		cache.EXPECT().Get("1-u").Return(nil, false)
		orders.EXPECT().GetOrderByID(mock.Anything, "1-u").Return(order, nil)
		cache.EXPECT().Set(mock.Anything, mock.Anything).Return()

		_, err := svc.GetOrderDetails(context.Background(), "intruder", "1-u")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}
