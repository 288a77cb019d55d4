package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/internal/middleware"
	"github.com/mealio/food-order-service/internal/service"
	"github.com/mealio/food-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	GetCart(ctx context.Context, userID string) (entities.Cart, entities.CartSummary, error)
	AddItem(ctx context.Context, userID string, foodID int64, quantity int) error
	SetQuantity(ctx context.Context, userID string, foodID int64, quantity int) error
	RemoveItem(ctx context.Context, userID string, foodID int64) error
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CartService
}

func NewCartHandler(logger *slog.Logger, svc CartService) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.AddItem)
		r.Patch("/cart/items/{food_id}", h.SetQuantity)
		r.Delete("/cart/items/{food_id}", h.RemoveItem)
	})
}

// GetCart возвращает корзину с актуальными суммами.
// @Summary      Корзина пользователя
// @Tags         cart
// @Success      200  {object} CartResponse
// @Failure      401  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	cart, summary, err := h.svc.GetCart(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get cart", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart, summary), http.StatusOK)
}

type addItemRequest struct {
	FoodID   int64 `json:"food_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gt=0"`
}

// AddItem добавляет позицию в корзину или увеличивает количество.
// @Summary      Добавить в корзину
// @Tags         cart
// @Param        request  body  addItemRequest  true  "Позиция"
// @Success      204
// @Failure      400  {object} utils.ValidationErrorResponse
// @Failure      404  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	var req addItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.svc.AddItem(ctx, userID, req.FoodID, req.Quantity)

	if errors.Is(err, entities.ErrFoodNotFound) {
		utils.WriteError(w, "food not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, service.ErrInvalidQuantity) {
		utils.WriteError(w, "invalid quantity", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to add cart item", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantity выставляет количество позиции. Ноль удаляет позицию.
// @Summary      Изменить количество
// @Tags         cart
// @Param        food_id  path  int               true  "Идентификатор блюда"
// @Param        request  body  setQuantityRequest true  "Количество"
// @Success      204
// @Failure      400  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /cart/items/{food_id} [patch]
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	foodID, err := strconv.ParseInt(chi.URLParam(r, "food_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid food id", http.StatusBadRequest)
		return
	}

	var req setQuantityRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.svc.SetQuantity(ctx, userID, foodID, req.Quantity); err != nil {
		h.logger.ErrorContext(ctx, "failed to set cart quantity", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveItem удаляет позицию из корзины.
// @Summary      Удалить из корзины
// @Tags         cart
// @Param        food_id  path  int  true  "Идентификатор блюда"
// @Success      204
// @Failure      400  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /cart/items/{food_id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	foodID, err := strconv.ParseInt(chi.URLParam(r, "food_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid food id", http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveItem(ctx, userID, foodID); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove cart item", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
