package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	mocks "github.com/mealio/food-order-service/internal/checkout/mocks"
	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/internal/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	gateway   *mocks.MockGateway
	orders    *mocks.MockOrderPlacer
	carts     *mocks.MockCartReader
	addresses *mocks.MockAddressLister

	coordinator *Coordinator
	settled     chan struct{}
}

func newFixture(t *testing.T, resultTimeout time.Duration) *fixture {
	f := &fixture{
		gateway:   mocks.NewMockGateway(t),
		orders:    mocks.NewMockOrderPlacer(t),
		carts:     mocks.NewMockCartReader(t),
		addresses: mocks.NewMockAddressLister(t),
		settled:   make(chan struct{}, 1),
	}
	f.coordinator = NewCoordinator(
		discardLogger, f.gateway, f.orders, f.carts, f.addresses,
		decimal.NewFromInt(10), resultTimeout,
	)
	f.coordinator.onSettled = func() { f.settled <- struct{}{} }
	return f
}

func (f *fixture) waitSettled(t *testing.T) {
	t.Helper()
	select {
	case <-f.settled:
	case <-time.After(5 * time.Second):
		t.Fatal("wallet session did not settle")
	}
}

func testCart() entities.Cart {
	return entities.Cart{
		{FoodID: 1, UnitPrice: decimal.NewFromInt(50), Quantity: 3},
	}
}

func TestCoordinator_Info(t *testing.T) {
	t.Run("single address is auto selected", func(t *testing.T) {
		f := newFixture(t, time.Minute)
		f.addresses.EXPECT().ListByUser(mock.Anything, "u").
			Return([]entities.Address{{ID: "addr-1"}}, nil)
		f.carts.EXPECT().ListCart(mock.Anything, "u").Return(testCart(), nil)

		info, err := f.coordinator.Info(context.Background(), "u")
		require.NoError(t, err)
		assert.Equal(t, "addr-1", info.AutoSelectedID)
		// subtotal 150, tax 3, delivery 10
		assert.True(t, info.Summary.Total.Equal(decimal.NewFromInt(163)))
	})

	t.Run("several addresses force a choice", func(t *testing.T) {
		f := newFixture(t, time.Minute)
		f.addresses.EXPECT().ListByUser(mock.Anything, "u").
			Return([]entities.Address{{ID: "addr-1"}, {ID: "addr-2"}}, nil)
		f.carts.EXPECT().ListCart(mock.Anything, "u").Return(testCart(), nil)

		info, err := f.coordinator.Info(context.Background(), "u")
		require.NoError(t, err)
		assert.Empty(t, info.AutoSelectedID)
	})
}

func TestCoordinator_CashCheckout(t *testing.T) {
	f := newFixture(t, time.Minute)

	// Наличные не трогают шлюз.
	f.orders.EXPECT().PlaceOrder(mock.Anything, "u", "addr-1", entities.PaymentCash).
		Return(entities.Order{ID: "1-u"}, nil)

	res, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, "1-u", res.OrderID)
	assert.Empty(t, res.Token)
	assert.Equal(t, StateCompleted, f.coordinator.State("u"))

	outcome, ok := f.coordinator.Result("u")
	require.True(t, ok)
	assert.Equal(t, StateCompleted, outcome.State)
	assert.Equal(t, "1-u", outcome.OrderID)

	// Терминальный итог одноразовый.
	assert.Equal(t, StateIdle, f.coordinator.State("u"))
}

func TestCoordinator_StartGuards(t *testing.T) {
	t.Run("no address", func(t *testing.T) {
		f := newFixture(t, time.Minute)
		_, err := f.coordinator.Start(context.Background(), "u", "", entities.PaymentCash)
		assert.ErrorIs(t, err, ErrNoAddress)
	})

	t.Run("invalid method", func(t *testing.T) {
		f := newFixture(t, time.Minute)
		_, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentMethod("card"))
		assert.ErrorIs(t, err, ErrInvalidMethod)
	})

	t.Run("busy session", func(t *testing.T) {
		f := newFixture(t, time.Minute)
		f.carts.EXPECT().ListCart(mock.Anything, "u").Return(testCart(), nil)
		f.gateway.EXPECT().CreateOrder(mock.Anything, "u", mock.Anything).
			Return(payment.Order{Token: "tok", AppTransID: "trans-1"}, nil)

		_, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentWallet)
		require.NoError(t, err)

		_, err = f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentCash)
		assert.ErrorIs(t, err, ErrCheckoutBusy)

		// Освобождаем фоновую горутину.
		require.NoError(t, f.coordinator.CompletePayment("trans-1", entities.PaymentResult{Status: entities.PaymentCanceled}))
		f.waitSettled(t)
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newFixture(t, time.Minute)
		f.carts.EXPECT().ListCart(mock.Anything, "u").Return(entities.Cart{}, nil)

		_, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentWallet)
		assert.ErrorIs(t, err, entities.ErrEmptyCart)
	})
}

func TestCoordinator_WalletSuccess(t *testing.T) {
	f := newFixture(t, time.Minute)

	f.carts.EXPECT().ListCart(mock.Anything, "u").Return(testCart(), nil)
	// total 163 -> minor units
	f.gateway.EXPECT().CreateOrder(mock.Anything, "u", "163000").
		Return(payment.Order{Token: "tok", AppTransID: "trans-1"}, nil)
	f.orders.EXPECT().PlaceOrder(mock.Anything, "u", "addr-1", entities.PaymentWallet).
		Once().Return(entities.Order{ID: "1-u"}, nil)

	res, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentWallet)
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Empty(t, res.OrderID)
	assert.Equal(t, StateAwaitingResult, f.coordinator.State("u"))

	require.NoError(t, f.coordinator.CompletePayment("trans-1", entities.PaymentResult{
		Status:        entities.PaymentSucceeded,
		TransactionID: "zp-42",
	}))
	f.waitSettled(t)

	assert.Equal(t, StateCompleted, f.coordinator.State("u"))
	outcome, ok := f.coordinator.Result("u")
	require.True(t, ok)
	assert.Equal(t, "1-u", outcome.OrderID)
}

func TestCoordinator_WalletCanceled(t *testing.T) {
	f := newFixture(t, time.Minute)

	f.carts.EXPECT().ListCart(mock.Anything, "u").Return(testCart(), nil)
	f.gateway.EXPECT().CreateOrder(mock.Anything, "u", mock.Anything).
		Return(payment.Order{Token: "tok", AppTransID: "trans-1"}, nil)

	_, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentWallet)
	require.NoError(t, err)

	require.NoError(t, f.coordinator.CompletePayment("trans-1", entities.PaymentResult{
		Status: entities.PaymentCanceled,
	}))
	f.waitSettled(t)

	// Отмена возвращает к выбору, заказа нет, токен сброшен.
	assert.Equal(t, StateAddressSelected, f.coordinator.State("u"))
	assert.Empty(t, f.coordinator.sessionFor("u").Token())

	outcome, ok := f.coordinator.Result("u")
	require.True(t, ok)
	require.NotNil(t, outcome.PaymentResult)
	assert.Equal(t, entities.PaymentCanceled, outcome.PaymentResult.Status)
	assert.Empty(t, outcome.OrderID)

	// Повторный старт с той же сессией разрешён.
	f.orders.EXPECT().PlaceOrder(mock.Anything, "u", "addr-1", entities.PaymentCash).
		Return(entities.Order{ID: "2-u"}, nil)
	res, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, "2-u", res.OrderID)
}

func TestCoordinator_GatewayError(t *testing.T) {
	f := newFixture(t, time.Minute)

	f.carts.EXPECT().ListCart(mock.Anything, "u").Return(testCart(), nil)
	f.gateway.EXPECT().CreateOrder(mock.Anything, "u", mock.Anything).
		Return(payment.Order{}, &payment.GatewayError{Code: "2", Message: "app id invalid"})

	_, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentWallet)
	require.Error(t, err)

	// Без токена нет и платёжного цикла: назад к выбору, PlaceOrder не звался.
	assert.Equal(t, StateAddressSelected, f.coordinator.State("u"))
}

func TestCoordinator_WalletTimeout(t *testing.T) {
	f := newFixture(t, 20*time.Millisecond)

	f.carts.EXPECT().ListCart(mock.Anything, "u").Return(testCart(), nil)
	f.gateway.EXPECT().CreateOrder(mock.Anything, "u", mock.Anything).
		Return(payment.Order{Token: "tok", AppTransID: "trans-1"}, nil)

	_, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentWallet)
	require.NoError(t, err)
	f.waitSettled(t)

	assert.Equal(t, StateFailed, f.coordinator.State("u"))

	// Колбэк после таймаута отклоняется.
	err = f.coordinator.CompletePayment("trans-1", entities.PaymentResult{Status: entities.PaymentSucceeded})
	assert.Error(t, err)
}

func TestCoordinator_DuplicateCallback(t *testing.T) {
	f := newFixture(t, time.Minute)

	f.carts.EXPECT().ListCart(mock.Anything, "u").Return(testCart(), nil)
	f.gateway.EXPECT().CreateOrder(mock.Anything, "u", mock.Anything).
		Return(payment.Order{Token: "tok", AppTransID: "trans-1"}, nil)
	f.orders.EXPECT().PlaceOrder(mock.Anything, "u", "addr-1", entities.PaymentWallet).
		Once().Return(entities.Order{ID: "1-u"}, nil)

	_, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentWallet)
	require.NoError(t, err)

	require.NoError(t, f.coordinator.CompletePayment("trans-1", entities.PaymentResult{
		Status: entities.PaymentSucceeded,
	}))
	f.waitSettled(t)

	err = f.coordinator.CompletePayment("trans-1", entities.PaymentResult{
		Status: entities.PaymentSucceeded,
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCoordinator_UnknownTransaction(t *testing.T) {
	f := newFixture(t, time.Minute)
	err := f.coordinator.CompletePayment("no-such-trans", entities.PaymentResult{Status: entities.PaymentSucceeded})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSession_ResultChannelPerAttempt(t *testing.T) {
	s := newSession("u")
	require.NoError(t, s.begin("addr-1", entities.PaymentWallet))
	s.awaitToken()
	ch1, err := s.tokenReceived("tok-1", "trans-1")
	require.NoError(t, err)

	// Колбэк успевает в зазор между выбором ветки таймаута и failed():
	// доставка проходит, но попытка уже завершается по таймауту.
	require.NoError(t, s.deliverResult(entities.PaymentResult{Status: entities.PaymentSucceeded}))
	s.failed("payment result timed out")
	_ = s.consume()

	require.NoError(t, s.begin("addr-1", entities.PaymentWallet))
	s.awaitToken()
	ch2, err := s.tokenReceived("tok-2", "trans-2")
	require.NoError(t, err)

	// Результат прежней попытки не должен оплатить новую.
	select {
	case res := <-ch2:
		t.Fatalf("result of a previous attempt leaked into the new one: %+v", res)
	default:
	}

	res := <-ch1
	assert.Equal(t, entities.PaymentSucceeded, res.Status)
}

func TestCoordinator_ConsumedSessionIsReleased(t *testing.T) {
	t.Run("terminal outcome drops the session entry", func(t *testing.T) {
		f := newFixture(t, time.Minute)
		f.orders.EXPECT().PlaceOrder(mock.Anything, "u", "addr-1", entities.PaymentCash).
			Return(entities.Order{ID: "1-u"}, nil)

		_, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentCash)
		require.NoError(t, err)

		_, ok := f.coordinator.Result("u")
		require.True(t, ok)

		f.coordinator.mu.Lock()
		_, live := f.coordinator.sessions["u"]
		f.coordinator.mu.Unlock()
		assert.False(t, live)
	})

	t.Run("selection state survives a result read", func(t *testing.T) {
		f := newFixture(t, time.Minute)
		f.carts.EXPECT().ListCart(mock.Anything, "u").Return(testCart(), nil)
		f.gateway.EXPECT().CreateOrder(mock.Anything, "u", mock.Anything).
			Return(payment.Order{Token: "tok", AppTransID: "trans-1"}, nil)

		_, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentWallet)
		require.NoError(t, err)
		require.NoError(t, f.coordinator.CompletePayment("trans-1", entities.PaymentResult{
			Status: entities.PaymentCanceled,
		}))
		f.waitSettled(t)

		_, ok := f.coordinator.Result("u")
		require.True(t, ok)

		f.coordinator.mu.Lock()
		_, live := f.coordinator.sessions["u"]
		f.coordinator.mu.Unlock()
		assert.True(t, live, "a session back at selection keeps its address")
	})
}

func TestCoordinator_SubmitFailureKeepsCart(t *testing.T) {
	f := newFixture(t, time.Minute)

	dbError := errors.New("db error")
	f.orders.EXPECT().PlaceOrder(mock.Anything, "u", "addr-1", entities.PaymentCash).
		Return(entities.Order{}, dbError)

	_, err := f.coordinator.Start(context.Background(), "u", "addr-1", entities.PaymentCash)
	assert.ErrorIs(t, err, dbError)
	assert.Equal(t, StateFailed, f.coordinator.State("u"))

	outcome, ok := f.coordinator.Result("u")
	require.True(t, ok)
	assert.Equal(t, StateFailed, outcome.State)
	assert.NotEmpty(t, outcome.Error)
	// После прочтения итога можно начать заново.
	assert.Equal(t, StateIdle, f.coordinator.State("u"))
}
