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

type UserService interface {
	GetProfile(ctx context.Context, userID string) (entities.User, error)
	UpdateProfile(ctx context.Context, u entities.User) error
}

type AddressService interface {
	ListAddresses(ctx context.Context, userID string) ([]entities.Address, error)
	CreateAddress(ctx context.Context, a entities.Address) (entities.Address, error)
}

type FavoriteService interface {
	ListFavorites(ctx context.Context, userID string) ([]entities.Food, error)
	AddFavorite(ctx context.Context, userID string, foodID int64) error
	RemoveFavorite(ctx context.Context, userID string, foodID int64) error
}

type ProfileHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	users     UserService
	addresses AddressService
	favorites FavoriteService
}

func NewProfileHandler(logger *slog.Logger, users UserService, addresses AddressService, favorites FavoriteService) *ProfileHandler {
	return &ProfileHandler{
		logger:    logger.With(slog.String("handler", "profile")),
		validate:  validator.New(),
		users:     users,
		addresses: addresses,
		favorites: favorites,
	}
}

func (h *ProfileHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.UpdateProfile)
		r.Get("/addresses", h.ListAddresses)
		r.Post("/addresses", h.CreateAddress)
		r.Get("/favorites", h.ListFavorites)
		r.Post("/favorites/{food_id}", h.AddFavorite)
		r.Delete("/favorites/{food_id}", h.RemoveFavorite)
	})
}

// GetProfile возвращает профиль текущего пользователя.
// @Summary      Профиль
// @Tags         profile
// @Success      200  {object} User
// @Failure      404  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	user, err := h.users.GetProfile(ctx, userID)

	if errors.Is(err, entities.ErrUserNotFound) {
		utils.WriteError(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get profile", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

type updateProfileRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone,omitempty"`
	Image    string `json:"image,omitempty"`
	Birthday string `json:"birthday,omitempty"`
}

// UpdateProfile обновляет профиль текущего пользователя.
// @Summary      Обновить профиль
// @Tags         profile
// @Param        request  body  updateProfileRequest  true  "Профиль"
// @Success      204
// @Failure      400  {object} utils.ValidationErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	var req updateProfileRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.users.UpdateProfile(ctx, entities.User{
		ID:       userID,
		Name:     req.Name,
		Phone:    req.Phone,
		Image:    req.Image,
		Birthday: req.Birthday,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update profile", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAddresses возвращает адреса пользователя.
// @Summary      Адреса доставки
// @Tags         profile
// @Success      200  {array}  Address
// @Failure      500  {object} utils.ErrorResponse
// @Router       /addresses [get]
func (h *ProfileHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	addresses, err := h.addresses.ListAddresses(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list addresses", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, AddressesEntityToJSON(addresses), http.StatusOK)
}

type createAddressRequest struct {
	RecipientName string `json:"recipient_name,omitempty"`
	Street        string `json:"street" validate:"required"`
	Locality      string `json:"locality,omitempty"`
	District      string `json:"district,omitempty"`
	City          string `json:"city,omitempty"`
	Region        string `json:"region,omitempty"`
	Country       string `json:"country,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Category      string `json:"category,omitempty" validate:"omitempty,oneof=home work other"`
}

// CreateAddress сохраняет новый адрес доставки.
// @Summary      Добавить адрес
// @Tags         profile
// @Param        request  body  createAddressRequest  true  "Адрес"
// @Success      201  {object} Address
// @Failure      400  {object} utils.ValidationErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /addresses [post]
func (h *ProfileHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	var req createAddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	address, err := h.addresses.CreateAddress(ctx, entities.Address{
		UserID:        userID,
		RecipientName: req.RecipientName,
		Street:        req.Street,
		Locality:      req.Locality,
		District:      req.District,
		City:          req.City,
		Region:        req.Region,
		Country:       req.Country,
		PostalCode:    req.PostalCode,
		Category:      entities.AddressCategory(req.Category),
	})

	if errors.Is(err, service.ErrInvalidAddress) {
		utils.WriteError(w, "invalid address", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create address", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, AddressEntityToJSON(address), http.StatusCreated)
}

// ListFavorites возвращает избранные блюда.
// @Summary      Избранное
// @Tags         profile
// @Success      200  {array}  Food
// @Failure      500  {object} utils.ErrorResponse
// @Router       /favorites [get]
func (h *ProfileHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	foods, err := h.favorites.ListFavorites(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list favorites", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, FoodsEntityToJSON(foods), http.StatusOK)
}

// AddFavorite добавляет блюдо в избранное.
// @Summary      Добавить в избранное
// @Tags         profile
// @Param        food_id  path  int  true  "Идентификатор блюда"
// @Success      204
// @Failure      404  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /favorites/{food_id} [post]
func (h *ProfileHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	foodID, err := strconv.ParseInt(chi.URLParam(r, "food_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid food id", http.StatusBadRequest)
		return
	}

	err = h.favorites.AddFavorite(ctx, userID, foodID)

	if errors.Is(err, entities.ErrFoodNotFound) {
		utils.WriteError(w, "food not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to add favorite", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveFavorite убирает блюдо из избранного.
// @Summary      Убрать из избранного
// @Tags         profile
// @Param        food_id  path  int  true  "Идентификатор блюда"
// @Success      204
// @Failure      400  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /favorites/{food_id} [delete]
func (h *ProfileHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	foodID, err := strconv.ParseInt(chi.URLParam(r, "food_id"), 10, 64)
	if err != nil {
		utils.WriteError(w, "invalid food id", http.StatusBadRequest)
		return
	}

	if err := h.favorites.RemoveFavorite(ctx, userID, foodID); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove favorite", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
