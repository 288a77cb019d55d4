package entities_test

import (
	"testing"
	"time"

	"github.com/mealio/food-order-service/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	id := entities.NewOrderID(at, "user-1")
	assert.Equal(t, "1700000000123-user-1", id)

	parsed, ok := entities.OrderTime(id)
	require.True(t, ok)
	assert.Equal(t, at.UnixMilli(), parsed.UnixMilli())
}

func TestOrderTime_Malformed(t *testing.T) {
	_, ok := entities.OrderTime("not-an-order-id")
	assert.False(t, ok)

	_, ok = entities.OrderTime("")
	assert.False(t, ok)
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from entities.OrderStatus
		to   entities.OrderStatus
		want bool
	}{
		{entities.StatusPending, entities.StatusProcessing, true},
		{entities.StatusPending, entities.StatusCancelled, true},
		{entities.StatusProcessing, entities.StatusCompleted, true},
		{entities.StatusProcessing, entities.StatusCancelled, true},
		{entities.StatusProcessing, entities.StatusPending, false},
		{entities.StatusCompleted, entities.StatusCancelled, false},
		{entities.StatusCancelled, entities.StatusProcessing, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_Next(t *testing.T) {
	assert.Equal(t, entities.StatusProcessing, entities.StatusPending.Next())
	assert.Equal(t, entities.StatusCompleted, entities.StatusProcessing.Next())
	// Terminal statuses stay put.
	assert.Equal(t, entities.StatusCompleted, entities.StatusCompleted.Next())
	assert.Equal(t, entities.StatusCancelled, entities.StatusCancelled.Next())
}

func TestOrderStatus_Cancelable(t *testing.T) {
	assert.True(t, entities.StatusPending.Cancelable())
	assert.True(t, entities.StatusProcessing.Cancelable())
	assert.False(t, entities.StatusCompleted.Cancelable())
	assert.False(t, entities.StatusCancelled.Cancelable())
}

func TestParseOrderStatus(t *testing.T) {
	status, err := entities.ParseOrderStatus("processing")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusProcessing, status)

	_, err = entities.ParseOrderStatus("shipped")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)
}

func TestOrder_MarshalUnmarshal(t *testing.T) {
	order := entities.Order{
		ID:     entities.NewOrderID(time.Now(), "user-1"),
		UserID: "user-1",
		Status: entities.StatusProcessing,
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.Status, got.Status)
}

func TestOrder_UnmarshalGarbage(t *testing.T) {
	var got entities.Order
	err := got.Unmarshal([]byte("garbage"))
	assert.ErrorIs(t, err, entities.ErrInvalidOrder)
}
