package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/internal/middleware"
	"github.com/mealio/food-order-service/internal/repo"
	"github.com/mealio/food-order-service/internal/service"
	"github.com/mealio/food-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const maxUploadSize = 10 << 20

type AdminOrderService interface {
	ListOrders(ctx context.Context, status entities.OrderStatus, limit int) ([]entities.Order, error)
	ChangeStatus(ctx context.Context, orderID string, next entities.OrderStatus) error
}

type AdminCatalogService interface {
	CreateFood(ctx context.Context, f entities.Food) (entities.Food, error)
	UpdateFood(ctx context.Context, f entities.Food) error
	DeleteFood(ctx context.Context, id int64) error
}

type AdminUserService interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetProfile(ctx context.Context, userID string) (entities.User, error)
}

type StatsService interface {
	Revenue(ctx context.Context, period string) ([]repo.RevenueBucket, error)
}

type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

type AdminHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   AdminOrderService
	catalog  AdminCatalogService
	users    AdminUserService
	stats    StatsService
	uploader Uploader
}

func NewAdminHandler(
	logger *slog.Logger,
	orders AdminOrderService,
	catalog AdminCatalogService,
	users AdminUserService,
	stats StatsService,
	uploader Uploader,
) *AdminHandler {
	return &AdminHandler{
		logger:   logger.With(slog.String("handler", "admin")),
		validate: validator.New(),
		orders:   orders,
		catalog:  catalog,
		users:    users,
		stats:    stats,
		uploader: uploader,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireUser, middleware.RequireAdmin)

		r.Get("/orders", h.ListOrders)
		r.Patch("/orders/{order_id}/status", h.ChangeStatus)

		r.Get("/users", h.ListUsers)
		r.Get("/users/{user_id}", h.GetUser)

		r.Post("/foods", h.CreateFood)
		r.Put("/foods/{food_id}", h.UpdateFood)
		r.Delete("/foods/{food_id}", h.DeleteFood)

		r.Get("/stats/revenue", h.Revenue)
		r.Post("/uploads", h.Upload)
	})
}

// ListOrders возвращает заказы для консоли управления.
// @Summary      Заказы
// @Tags         admin
// @Param        status  query  string  false  "Статус заказа, без него отдаются все"
// @Param        limit   query  int     false  "Максимум записей"
// @Success      200  {array}  Order
// @Failure      400  {object} utils.ErrorResponse
// @Failure      403  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /admin/orders [get]
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var status entities.OrderStatus
	if v := r.URL.Query().Get("status"); v != "" {
		var err error
		status, err = entities.ParseOrderStatus(v)
		if err != nil {
			utils.WriteError(w, "invalid order status", http.StatusBadRequest)
			return
		}
	}

	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		var err error
		limit, err = strconv.Atoi(v)
		if err != nil || limit <= 0 {
			utils.WriteError(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	orders, err := h.orders.ListOrders(ctx, status, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err), slog.String("status", string(status)))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}

// ChangeStatus переводит заказ в следующий статус.
// @Summary      Сменить статус заказа
// @Tags         admin
// @Param        order_id  path  string               true  "Идентификатор заказа"
// @Param        request   body  changeStatusRequest  true  "Новый статус"
// @Success      204
// @Failure      400  {object} utils.ValidationErrorResponse
// @Failure      404  {object} utils.ErrorResponse
// @Failure      409  {object} utils.ErrorResponse "Недопустимый переход"
// @Failure      500  {object} utils.ErrorResponse
// @Router       /admin/orders/{order_id}/status [patch]
func (h *AdminHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req changeStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.orders.ChangeStatus(ctx, orderID, entities.OrderStatus(req.Status))

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, entities.ErrInvalidStatus) {
		utils.WriteError(w, "invalid status transition", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to change order status", slog.Any("error", err), slog.String("orderID", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListUsers возвращает всех пользователей.
// @Summary      Пользователи
// @Tags         admin
// @Success      200  {array}  User
// @Failure      500  {object} utils.ErrorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.users.ListUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, UserEntityToJSON(u))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// GetUser возвращает пользователя по идентификатору.
// @Summary      Пользователь
// @Tags         admin
// @Param        user_id  path  string  true  "Идентификатор пользователя"
// @Success      200  {object} User
// @Failure      404  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /admin/users/{user_id} [get]
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	user, err := h.users.GetProfile(ctx, userID)

	if errors.Is(err, entities.ErrUserNotFound) {
		utils.WriteError(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

type foodRequest struct {
	CategoryID  string          `json:"category_id,omitempty"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description,omitempty"`
	ImagePath   string          `json:"image_path,omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Star        float64         `json:"star,omitempty" validate:"gte=0,lte=5"`
	TimeValue   int             `json:"time_value,omitempty" validate:"gte=0"`
	Calorie     int             `json:"calorie,omitempty" validate:"gte=0"`
	BestFood    bool            `json:"best_food,omitempty"`
}

func (req foodRequest) toEntity() entities.Food {
	return entities.Food{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		ImagePath:   req.ImagePath,
		Price:       req.Price,
		Star:        req.Star,
		TimeValue:   req.TimeValue,
		Calorie:     req.Calorie,
		BestFood:    req.BestFood,
	}
}

// CreateFood добавляет блюдо в каталог.
// @Summary      Создать блюдо
// @Tags         admin
// @Param        request  body  foodRequest  true  "Блюдо"
// @Success      201  {object} Food
// @Failure      400  {object} utils.ValidationErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /admin/foods [post]
func (h *AdminHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req foodRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	food, err := h.catalog.CreateFood(ctx, req.toEntity())

	if errors.Is(err, service.ErrInvalidFood) {
		utils.WriteError(w, "invalid food", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create food", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, FoodEntityToJSON(food), http.StatusCreated)
}

// UpdateFood обновляет блюдо.
// @Summary      Обновить блюдо
// @Tags         admin
// @Param        food_id  path  int          true  "Идентификатор блюда"
// @Param        request  body  foodRequest  true  "Блюдо"
// @Success      204
// @Failure      400  {object} utils.ValidationErrorResponse
// @Failure      404  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /admin/foods/{food_id} [put]
func (h *AdminHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	foodID, err := strconv.ParseInt(chi.URLParam(r, "food_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid food id", http.StatusBadRequest)
		return
	}

	var req foodRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	food := req.toEntity()
	food.ID = foodID
	err = h.catalog.UpdateFood(ctx, food)

	if errors.Is(err, entities.ErrFoodNotFound) {
		utils.WriteError(w, "food not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, service.ErrInvalidFood) {
		utils.WriteError(w, "invalid food", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update food", slog.Any("error", err), slog.Int64("foodID", foodID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteFood удаляет блюдо из каталога.
// @Summary      Удалить блюдо
// @Tags         admin
// @Param        food_id  path  int  true  "Идентификатор блюда"
// @Success      204
// @Failure      404  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /admin/foods/{food_id} [delete]
func (h *AdminHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	foodID, err := strconv.ParseInt(chi.URLParam(r, "food_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid food id", http.StatusBadRequest)
		return
	}

	err = h.catalog.DeleteFood(ctx, foodID)

	if errors.Is(err, entities.ErrFoodNotFound) {
		utils.WriteError(w, "food not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete food", slog.Any("error", err), slog.Int64("foodID", foodID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type revenueBucket struct {
	Bucket  time.Time       `json:"bucket"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// Revenue возвращает выручку по завершённым заказам.
// @Summary      Статистика выручки
// @Tags         admin
// @Param        period  query  string  true  "Период: day, month или year"
// @Success      200  {array}  revenueBucket
// @Failure      400  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /admin/stats/revenue [get]
func (h *AdminHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	period := r.URL.Query().Get("period")

	buckets, err := h.stats.Revenue(ctx, period)

	if errors.Is(err, service.ErrInvalidPeriod) {
		utils.WriteError(w, "invalid statistics period", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load revenue stats", slog.Any("error", err), slog.String("period", period))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]revenueBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, revenueBucket{Bucket: b.Bucket, Revenue: b.Revenue, Orders: b.Orders})
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload загружает изображение блюда и возвращает его URL.
// @Summary      Загрузить изображение
// @Tags         admin
// @Accept       multipart/form-data
// @Param        file  formData  file  true  "Изображение"
// @Success      201  {object} uploadResponse
// @Failure      400  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /admin/uploads [post]
func (h *AdminHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.WriteError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(ctx, header.Filename, file)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to upload image", slog.Any("error", err), slog.String("filename", header.Filename))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, uploadResponse{URL: url}, http.StatusCreated)
}
