package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/internal/middleware"
	"github.com/mealio/food-order-service/internal/service"
	"github.com/mealio/food-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	UserOrderHistory(ctx context.Context, userID string) ([]service.OrderWithAddress, error)
	GetOrderDetails(ctx context.Context, userID, orderID string) (service.OrderWithAddress, error)
	CancelOrder(ctx context.Context, userID, orderID string) error
}

type OrdersHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrdersHandler(logger *slog.Logger, svc OrderService) *OrdersHandler {
	return &OrdersHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrdersHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/orders", h.History)
		r.Get("/orders/{order_id}", h.GetOrder)
		r.Post("/orders/{order_id}/cancel", h.CancelOrder)
	})
}

// History возвращает заказы пользователя, новые первыми.
// @Summary      История заказов
// @Tags         orders
// @Success      200  {array}  Order
// @Failure      401  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /orders [get]
func (h *OrdersHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	orders, err := h.svc.UserOrderHistory(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list order history", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderWithAddressToJSON(o))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// GetOrder возвращает заказ пользователя с позициями и адресом.
// @Summary      Детали заказа
// @Tags         orders
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      200  {object} Order
// @Failure      404  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrderDetails(ctx, userID, orderID)

	// Чужой заказ неотличим от несуществующего.
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("orderID", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderWithAddressToJSON(order), http.StatusOK)
}

// CancelOrder отменяет заказ, пока он ещё не взят в работу.
// @Summary      Отменить заказ
// @Tags         orders
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      204
// @Failure      404  {object} utils.ErrorResponse
// @Failure      409  {object} utils.ErrorResponse "Статус не допускает отмену"
// @Failure      500  {object} utils.ErrorResponse
// @Router       /orders/{order_id}/cancel [post]
func (h *OrdersHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.svc.CancelOrder(ctx, userID, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, entities.ErrStatusNotCancelable) {
		utils.WriteError(w, "order can no longer be cancelled", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to cancel order", slog.Any("error", err), slog.String("orderID", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersCancelled.Inc()
	w.WriteHeader(http.StatusNoContent)
}
