package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/internal/handler"
	mocks "github.com/mealio/food-order-service/internal/handler/mocks"
	"github.com/mealio/food-order-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrdersHandler_GetOrder(t *testing.T) {
	order := service.OrderWithAddress{
		Order:   entities.Order{ID: "1-u", UserID: "u", Status: entities.StatusProcessing},
		Address: &entities.Address{ID: "addr-1", Street: "Nguyen Hue 1"},
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "1-u",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderDetails(mock.Anything, "u", "1-u").
					Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"1-u"`,
		},
		{
			name:    "not found",
			orderID: "missing",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderDetails(mock.Anything, "u", "missing").
					Return(service.OrderWithAddress{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "1-u",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderDetails(mock.Anything, "u", "1-u").
					Return(service.OrderWithAddress{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := chi.NewRouter()
			handler.NewOrdersHandler(discardLogger, svc).Init(r)

			req := asUser(httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil), "u")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrdersHandler_CancelOrder(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, "u", "1-u").Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "already completed",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, "u", "1-u").
					Return(entities.ErrStatusNotCancelable).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "not found",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, "u", "1-u").
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := chi.NewRouter()
			handler.NewOrdersHandler(discardLogger, svc).Init(r)

			req := asUser(httptest.NewRequest(http.MethodPost, "/orders/1-u/cancel", nil), "u")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
