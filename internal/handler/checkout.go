package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/mealio/food-order-service/internal/checkout"
	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/internal/middleware"
	"github.com/mealio/food-order-service/internal/payment"
	"github.com/mealio/food-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutCoordinator interface {
	Info(ctx context.Context, userID string) (checkout.Info, error)
	Start(ctx context.Context, userID, addressID string, method entities.PaymentMethod) (checkout.StartResult, error)
	Result(userID string) (checkout.Outcome, bool)
	State(userID string) checkout.State
	CompletePayment(appTransID string, result entities.PaymentResult) error
}

type CallbackParser interface {
	ParseCallback(body []byte) (payment.CallbackData, error)
}

type CheckoutHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CheckoutCoordinator
	gateway  CallbackParser
}

func NewCheckoutHandler(logger *slog.Logger, svc CheckoutCoordinator, gateway CallbackParser) *CheckoutHandler {
	return &CheckoutHandler{
		logger:   logger.With(slog.String("handler", "checkout")),
		validate: validator.New(),
		svc:      svc,
		gateway:  gateway,
	}
}

func (h *CheckoutHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/checkout", h.Info)
		r.Post("/checkout", h.Start)
		r.Get("/checkout/result", h.Result)
	})

	// Вызывается шлюзом, не клиентом. Аутентификация - подпись HMAC.
	r.Post("/payments/callback", h.PaymentCallback)
}

type checkoutInfoResponse struct {
	Addresses      []Address   `json:"addresses"`
	AutoSelectedID string      `json:"auto_selected_id,omitempty"`
	Cart           []CartLine  `json:"cart"`
	Summary        CartSummary `json:"summary"`
}

// Info возвращает данные экрана оформления заказа.
// @Summary      Экран оформления
// @Tags         checkout
// @Success      200  {object} checkoutInfoResponse
// @Failure      401  {object} utils.ErrorResponse
// @Failure      500  {object} utils.ErrorResponse
// @Router       /checkout [get]
func (h *CheckoutHandler) Info(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	info, err := h.svc.Info(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build checkout info", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	cart := CartEntityToJSON(info.Cart, info.Summary)
	utils.WriteJSON(w, checkoutInfoResponse{
		Addresses:      AddressesEntityToJSON(info.Addresses),
		AutoSelectedID: info.AutoSelectedID,
		Cart:           cart.Lines,
		Summary:        cart.Summary,
	}, http.StatusOK)
}

type startCheckoutRequest struct {
	AddressID     string `json:"address_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash wallet"`
}

type startCheckoutResponse struct {
	State   string `json:"state"`
	OrderID string `json:"order_id,omitempty"`
	Token   string `json:"token,omitempty"`
}

// Start запускает оформление заказа.
// @Summary      Начать оформление
// @Description  Наличные оформляются сразу, кошелёк возвращает платёжный токен
// @Tags         checkout
// @Param        request  body  startCheckoutRequest  true  "Адрес и способ оплаты"
// @Success      200  {object} startCheckoutResponse
// @Failure      400  {object} utils.ValidationErrorResponse
// @Failure      409  {object} utils.ErrorResponse "Оформление уже идёт"
// @Failure      422  {object} utils.ErrorResponse "Пустая корзина"
// @Failure      500  {object} utils.ErrorResponse
// @Failure      502  {object} utils.ErrorResponse "Отказ платёжного шлюза"
// @Router       /checkout [post]
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)

	var req startCheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.svc.Start(ctx, userID, req.AddressID, entities.PaymentMethod(req.PaymentMethod))

	var gwErr *payment.GatewayError
	switch {
	case errors.Is(err, checkout.ErrNoAddress), errors.Is(err, checkout.ErrInvalidMethod):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, checkout.ErrCheckoutBusy):
		utils.WriteError(w, "checkout already in progress", http.StatusConflict)
		return
	case errors.Is(err, entities.ErrEmptyCart):
		utils.WriteError(w, "cart is empty", http.StatusUnprocessableEntity)
		return
	case errors.As(err, &gwErr):
		// Отказ шлюза показываем пользователю как есть.
		h.logger.WarnContext(ctx, "gateway rejected checkout",
			slog.String("code", gwErr.Code), slog.String("message", gwErr.Message))
		utils.WriteError(w, gwErr.Message, http.StatusBadGateway)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to start checkout", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	checkoutsStarted.WithLabelValues(req.PaymentMethod).Inc()

	utils.WriteJSON(w, startCheckoutResponse{
		State:   string(h.svc.State(userID)),
		OrderID: res.OrderID,
		Token:   res.Token,
	}, http.StatusOK)
}

type checkoutResultResponse struct {
	State         string `json:"state"`
	OrderID       string `json:"order_id,omitempty"`
	Error         string `json:"error,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
}

// Result возвращает одноразовый итог оформления.
// @Summary      Итог оформления
// @Description  Терминальный итог отдаётся один раз, после чего сессия сбрасывается
// @Tags         checkout
// @Success      200  {object} checkoutResultResponse
// @Failure      404  {object} utils.ErrorResponse
// @Router       /checkout/result [get]
func (h *CheckoutHandler) Result(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	outcome, ok := h.svc.Result(userID)
	if !ok {
		utils.WriteError(w, "no checkout session", http.StatusNotFound)
		return
	}

	res := checkoutResultResponse{
		State:   string(outcome.State),
		OrderID: outcome.OrderID,
		Error:   outcome.Error,
	}
	if outcome.PaymentResult != nil {
		res.PaymentStatus = string(outcome.PaymentResult.Status)
		res.ErrorCode = outcome.PaymentResult.ErrorCode
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

type callbackResponse struct {
	ReturnCode    int    `json:"return_code"`
	ReturnMessage string `json:"return_message"`
}

// PaymentCallback принимает результат оплаты от шлюза.
// @Summary      Колбэк платёжного шлюза
// @Tags         checkout
// @Success      200  {object} callbackResponse
// @Router       /payments/callback [post]
func (h *CheckoutHandler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteJSON(w, callbackResponse{ReturnCode: -1, ReturnMessage: "unreadable body"}, http.StatusOK)
		return
	}

	data, err := h.gateway.ParseCallback(body)
	if errors.Is(err, payment.ErrBadSignature) {
		h.logger.WarnContext(ctx, "payment callback signature mismatch")
		utils.WriteJSON(w, callbackResponse{ReturnCode: -1, ReturnMessage: "mac not equal"}, http.StatusOK)
		return
	}
	if err != nil {
		h.logger.WarnContext(ctx, "malformed payment callback", slog.Any("error", err))
		utils.WriteJSON(w, callbackResponse{ReturnCode: -1, ReturnMessage: "malformed payload"}, http.StatusOK)
		return
	}

	result := entities.PaymentResult{
		Status:        entities.PaymentStatus(data.Status),
		TransactionID: data.TransactionID,
		ErrorCode:     data.ErrorCode,
	}
	switch result.Status {
	case entities.PaymentSucceeded, entities.PaymentCanceled, entities.PaymentFailed:
	default:
		result.Status = entities.PaymentFailed
	}

	paymentCallbacks.WithLabelValues(string(result.Status)).Inc()

	if err := h.svc.CompletePayment(data.AppTransID, result); err != nil {
		// Колбэк может прийти после таймаута сессии, это не ошибка шлюза.
		h.logger.WarnContext(ctx, "payment callback without live session",
			slog.Any("error", err), slog.String("appTransID", data.AppTransID))
	}

	utils.WriteJSON(w, callbackResponse{ReturnCode: 1, ReturnMessage: "success"}, http.StatusOK)
}
