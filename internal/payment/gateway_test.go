package payment_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mealio/food-order-service/internal/config"
	"github.com/mealio/food-order-service/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig(endpoint string) config.Payment {
	return config.Payment{
		Endpoint:       endpoint,
		AppID:          "2553",
		Key1:           "key-one",
		Key2:           "key-two",
		CallbackURL:    "http://localhost:8080/payments/callback",
		RequestTimeout: 2 * time.Second,
		ResultTimeout:  time.Minute,
	}
}

func sign(key string, fields ...string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestGateway_CreateOrder(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		var form map[string]string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			form = map[string]string{}
			for k := range r.PostForm {
				form[k] = r.PostForm.Get(k)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"return_code":    1,
				"return_message": "success",
				"zp_trans_token": "tok-123",
			})
		}))
		defer srv.Close()

		g := payment.NewGateway(discardLogger, testConfig(srv.URL))

		order, err := g.CreateOrder(context.Background(), "user-1", "163000")
		require.NoError(t, err)
		assert.Equal(t, "tok-123", order.Token)
		assert.NotEmpty(t, order.AppTransID)
		assert.Equal(t, order.AppTransID, form["app_trans_id"])

		assert.Equal(t, "2553", form["app_id"])
		assert.Equal(t, "user-1", form["app_user"])
		assert.Equal(t, "163000", form["amount"])
		assert.Equal(t, "http://localhost:8080/payments/callback", form["callback_url"])

		wantMAC := sign("key-one",
			"2553", form["app_trans_id"], "user-1", "163000", form["app_time"], "{}", "[]")
		assert.Equal(t, wantMAC, form["mac"])
	})

	t.Run("gateway rejects the order", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"return_code":    2,
				"return_message": "app id invalid",
			})
		}))
		defer srv.Close()

		g := payment.NewGateway(discardLogger, testConfig(srv.URL))

		_, err := g.CreateOrder(context.Background(), "user-1", "1000")
		var gwErr *payment.GatewayError
		require.ErrorAs(t, err, &gwErr)
		assert.Equal(t, "2", gwErr.Code)
		assert.Equal(t, "app id invalid", gwErr.Message)
	})

	t.Run("gateway unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		g := payment.NewGateway(discardLogger, testConfig(srv.URL))

		_, err := g.CreateOrder(context.Background(), "user-1", "1000")
		var gwErr *payment.GatewayError
		require.ErrorAs(t, err, &gwErr)
		assert.Empty(t, gwErr.Code)
	})

	t.Run("malformed response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		g := payment.NewGateway(discardLogger, testConfig(srv.URL))

		_, err := g.CreateOrder(context.Background(), "user-1", "1000")
		var gwErr *payment.GatewayError
		require.ErrorAs(t, err, &gwErr)
	})
}

func TestGateway_ParseCallback(t *testing.T) {
	g := payment.NewGateway(discardLogger, testConfig("http://unused"))

	data, err := json.Marshal(payment.CallbackData{
		AppTransID:    "250101_abc",
		TransactionID: "zp-42",
		Status:        "success",
	})
	require.NoError(t, err)

	t.Run("OK", func(t *testing.T) {
		body, err := json.Marshal(map[string]string{
			"data": string(data),
			"mac":  sign("key-two", string(data)),
		})
		require.NoError(t, err)

		parsed, err := g.ParseCallback(body)
		require.NoError(t, err)
		assert.Equal(t, "250101_abc", parsed.AppTransID)
		assert.Equal(t, "zp-42", parsed.TransactionID)
		assert.Equal(t, "success", parsed.Status)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		body, err := json.Marshal(map[string]string{
			"data": string(data),
			"mac":  sign("key-one", string(data)),
		})
		require.NoError(t, err)

		_, err = g.ParseCallback(body)
		assert.ErrorIs(t, err, payment.ErrBadSignature)
	})

	t.Run("tampered data is rejected", func(t *testing.T) {
		tampered := strings.Replace(string(data), "zp-42", "zp-43", 1)
		body, err := json.Marshal(map[string]string{
			"data": tampered,
			"mac":  sign("key-two", string(data)),
		})
		require.NoError(t, err)

		_, err = g.ParseCallback(body)
		assert.ErrorIs(t, err, payment.ErrBadSignature)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := g.ParseCallback([]byte("not json"))
		assert.Error(t, err)
	})
}
