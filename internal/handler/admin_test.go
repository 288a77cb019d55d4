package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/internal/handler"
	mocks "github.com/mealio/food-order-service/internal/handler/mocks"
	"github.com/mealio/food-order-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAdminRouter(t *testing.T) (*mocks.MockAdminOrderService, chi.Router) {
	orders := mocks.NewMockAdminOrderService(t)

	r := chi.NewRouter()
	handler.NewAdminHandler(discardLogger, orders, nil, nil, nil, nil).Init(r)
	return orders, r
}

func asAdmin(req *http.Request) *http.Request {
	req.Header.Set(middleware.HeaderUserID, "admin-1")
	req.Header.Set(middleware.HeaderUserRole, string(entities.RoleAdmin))
	return req
}

func TestAdminHandler_ListOrders(t *testing.T) {
	testCases := []struct {
		name         string
		target       string
		mockBehavior func(orders *mocks.MockAdminOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "filter by status",
			target: "/admin/orders?status=processing",
			mockBehavior: func(orders *mocks.MockAdminOrderService) {
				orders.EXPECT().ListOrders(mock.Anything, entities.StatusProcessing, 100).
					Return([]entities.Order{{ID: "1-u", Status: entities.StatusProcessing}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"1-u"`,
		},
		{
			name:   "absent status lists all orders",
			target: "/admin/orders",
			mockBehavior: func(orders *mocks.MockAdminOrderService) {
				orders.EXPECT().ListOrders(mock.Anything, entities.OrderStatus(""), 100).
					Return([]entities.Order{{ID: "1-u"}, {ID: "2-v"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"2-v"`,
		},
		{
			name:       "unknown status is rejected",
			target:     "/admin/orders?status=shipped",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-positive limit is rejected",
			target:     "/admin/orders?limit=0",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders, r := newAdminRouter(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(orders)
			}

			req := asAdmin(httptest.NewRequest(http.MethodGet, tc.target, nil))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestAdminHandler_ListOrdersForbiddenForCustomer(t *testing.T) {
	_, r := newAdminRouter(t)

	req := asUser(httptest.NewRequest(http.MethodGet, "/admin/orders", nil), "u")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
