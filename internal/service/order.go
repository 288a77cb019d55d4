package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/internal/events"
	"github.com/mealio/food-order-service/pkg/trm"
	"github.com/mealio/food-order-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus, limit int) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, at time.Time) error

	// Операции идемпотентны, оба инзерта используют ON CONFLICT DO NOTHING
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveLines(ctx context.Context, lines []entities.OrderLine) error
}

type CartRepo interface {
	ListCart(ctx context.Context, userID string) (entities.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

type AddressGetter interface {
	GetByID(ctx context.Context, id string) (entities.Address, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, eventType string, order entities.Order) error
}

type orderService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	orders      OrderRepo
	carts       CartRepo
	addresses   AddressGetter
	cache       Cache
	events      EventPublisher
	deliveryFee decimal.Decimal
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	carts CartRepo,
	addresses AddressGetter,
	cache Cache,
	events EventPublisher,
	deliveryFee decimal.Decimal,
) *orderService {
	return &orderService{
		logger:      logger.With(slog.String("service", "order")),
		txManager:   txManager,
		orders:      orders,
		carts:       carts,
		addresses:   addresses,
		cache:       cache,
		events:      events,
		deliveryFee: deliveryFee,
	}
}

var retryCfg = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// PlaceOrder turns the user's cart into a persisted order. The order record,
// all of its lines and the cart clearing commit in one transaction, so a
// half-written order cannot be observed.
func (s *orderService) PlaceOrder(ctx context.Context, userID, addressID string, method entities.PaymentMethod) (entities.Order, error) {
	cart, err := s.carts.ListCart(ctx, userID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart) == 0 {
		return entities.Order{}, entities.ErrEmptyCart
	}

	summary := entities.Summarize(cart, s.deliveryFee)

	now := time.Now()
	order := entities.Order{
		ID:            entities.NewOrderID(now, userID),
		UserID:        userID,
		AddressID:     addressID,
		TotalPrice:    summary.Total,
		Status:        entities.StatusProcessing,
		PaymentMethod: method,
		CreatedAt:     now,
	}

	order.Lines = make([]entities.OrderLine, 0, len(cart))
	for _, line := range cart {
		order.Lines = append(order.Lines, entities.OrderLine{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			FoodID:    line.FoodID,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.orders.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.orders.SaveLines(ctx, order.Lines); err != nil {
				return fmt.Errorf("failed to save order lines: %w", err)
			}
			if err := s.carts.ClearCart(ctx, userID); err != nil {
				return fmt.Errorf("failed to clear cart: %w", err)
			}
			return nil
		})
	}

	if err := utils.Retry(retryCfg, fn); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	s.publish(ctx, events.TypeOrderPlaced, order)

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.String("payment_method", string(method)),
	)
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(retryCfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

// OrderWithAddress pairs an order with the delivery address it references.
// The address is resolved by id at read time; an order pointing at a deleted
// or foreign id simply carries no address.
type OrderWithAddress struct {
	Order   entities.Order
	Address *entities.Address
}

func (s *orderService) UserOrderHistory(ctx context.Context, userID string) ([]OrderWithAddress, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]OrderWithAddress, 0, len(orders))
	for _, order := range orders {
		entry := OrderWithAddress{Order: order}
		if address, err := s.addresses.GetByID(ctx, order.AddressID); err == nil {
			entry.Address = &address
		} else if !errors.Is(err, entities.ErrAddressNotFound) {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *orderService) GetOrderDetails(ctx context.Context, userID, orderID string) (OrderWithAddress, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return OrderWithAddress{}, err
	}
	if order.UserID != userID {
		return OrderWithAddress{}, entities.ErrOrderNotFound
	}

	entry := OrderWithAddress{Order: order}
	if address, err := s.addresses.GetByID(ctx, order.AddressID); err == nil {
		entry.Address = &address
	} else if !errors.Is(err, entities.ErrAddressNotFound) {
		return OrderWithAddress{}, err
	}
	return entry, nil
}

// CancelOrder lets the owner cancel an order that has not been handed to
// delivery yet.
func (s *orderService) CancelOrder(ctx context.Context, userID, orderID string) error {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return entities.ErrOrderNotFound
	}
	if !order.Status.Cancelable() {
		return entities.ErrStatusNotCancelable
	}

	now := time.Now()
	if err := s.orders.UpdateStatus(ctx, orderID, entities.StatusCancelled, now); err != nil {
		return err
	}

	order.Status = entities.StatusCancelled
	order.CancelledAt = now
	s.cacheOrder(order)
	s.publish(ctx, events.TypeOrderStatusChanged, order)

	s.logger.InfoContext(ctx, "order cancelled", slog.String("order_id", orderID))
	return nil
}

// ChangeStatus moves an order along the admin workflow. Transitions out of
// completed or cancelled are rejected.
func (s *orderService) ChangeStatus(ctx context.Context, orderID string, next entities.OrderStatus) error {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(next) {
		return entities.ErrInvalidStatus
	}

	now := time.Now()
	if err := s.orders.UpdateStatus(ctx, orderID, next, now); err != nil {
		return err
	}

	order.Status = next
	if next == entities.StatusCancelled {
		order.CancelledAt = now
	}
	s.cacheOrder(order)
	s.publish(ctx, events.TypeOrderStatusChanged, order)
	return nil
}

func (s *orderService) ListOrders(ctx context.Context, status entities.OrderStatus, limit int) ([]entities.Order, error) {
	if status != "" {
		if _, err := entities.ParseOrderStatus(string(status)); err != nil {
			return nil, err
		}
	}
	return s.orders.ListByStatus(ctx, status, limit)
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.orders.LatestOrders(ctx, count)
	if err != nil {
		return err
	}
	for _, order := range orders {
		s.cacheOrder(order)
	}
	s.logger.Info("order cache warmed up", slog.Int("count", len(orders)))
	return nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}

func (s *orderService) publish(ctx context.Context, eventType string, order entities.Order) {
	if err := s.events.PublishOrderEvent(ctx, eventType, order); err != nil {
		// Events are advisory; the order is already committed.
		s.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("order_id", order.ID), slog.Any("error", err))
	}
}
