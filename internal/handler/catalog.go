package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CatalogService interface {
	ListFoods(ctx context.Context) ([]entities.Food, error)
	ListBestFoods(ctx context.Context) ([]entities.Food, error)
	ListByCategory(ctx context.Context, categoryID string) ([]entities.Food, error)
	GetFood(ctx context.Context, id int64) (entities.Food, error)
}

type CatalogHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CatalogService
}

func NewCatalogHandler(logger *slog.Logger, svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		logger:   logger.With(slog.String("handler", "catalog")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Get("/foods", h.ListFoods)
	r.Get("/foods/best", h.ListBestFoods)
	r.Get("/foods/{food_id}", h.GetFood)
	r.Get("/categories/{category_id}/foods", h.ListByCategory)
}

// ListFoods возвращает весь каталог.
// @Summary      Каталог блюд
// @Tags         catalog
// @Success      200  {array}  Food
// @Failure      500  {object} utils.ErrorResponse
// @Router       /foods [get]
func (h *CatalogHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	foods, err := h.svc.ListFoods(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list foods", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, FoodsEntityToJSON(foods), http.StatusOK)
}

// ListBestFoods возвращает рекомендуемые блюда.
// @Summary      Рекомендуемые блюда
// @Tags         catalog
// @Success      200  {array}  Food
// @Failure      500  {object} utils.ErrorResponse
// @Router       /foods/best [get]
func (h *CatalogHandler) ListBestFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	foods, err := h.svc.ListBestFoods(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list best foods", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, FoodsEntityToJSON(foods), http.StatusOK)
}

// ListByCategory возвращает блюда категории.
// @Summary      Блюда по категории
// @Tags         catalog
// @Param        category_id  path  string  true  "Идентификатор категории"
// @Success      200  {array}  Food
// @Failure      500  {object} utils.ErrorResponse
// @Router       /categories/{category_id}/foods [get]
func (h *CatalogHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID := chi.URLParam(r, "category_id")

	if err := h.validate.Var(categoryID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	foods, err := h.svc.ListByCategory(ctx, categoryID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list foods by category",
			slog.Any("error", err), slog.String("categoryID", categoryID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, FoodsEntityToJSON(foods), http.StatusOK)
}

// GetFood возвращает блюдо по идентификатору.
// @Summary      Блюдо по ID
// @Tags         catalog
// @Param        food_id  path  int  true  "Идентификатор блюда"
// @Success      200  {object} Food
// @Failure      404  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /foods/{food_id} [get]
func (h *CatalogHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	foodID, err := strconv.ParseInt(chi.URLParam(r, "food_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid food id", http.StatusBadRequest)
		return
	}

	food, err := h.svc.GetFood(ctx, foodID)

	if errors.Is(err, entities.ErrFoodNotFound) {
		utils.WriteError(w, "food not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get food", slog.Any("error", err), slog.Int64("foodID", foodID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, FoodEntityToJSON(food), http.StatusOK)
}
