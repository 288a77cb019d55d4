package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mealio/food-order-service/internal/config"

	"github.com/google/uuid"
)

// GatewayError carries the gateway's own code and message. Connectivity
// failures surface as a GatewayError too, so callers treat every failed
// create-order uniformly: no token, no payment flow.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("payment gateway: %s", e.Message)
	}
	return fmt.Sprintf("payment gateway: code %s: %s", e.Code, e.Message)
}

var ErrBadSignature = errors.New("callback signature mismatch")

// Order is one pending payment attempt at the gateway. Token is handed to
// the wallet client; AppTransID keys the result callback.
type Order struct {
	Token      string
	AppTransID string
}

type Gateway struct {
	cfg    config.Payment
	logger *slog.Logger
	client *http.Client
}

func NewGateway(logger *slog.Logger, cfg config.Payment) *Gateway {
	return &Gateway{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "payment_gateway")),
		client: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type createOrderResponse struct {
	ReturnCode    json.Number `json:"return_code"`
	ReturnMessage string      `json:"return_message"`
	TransToken    string      `json:"zp_trans_token"`
}

// CreateOrder registers a payment of amountMinorUnits (integer minor units,
// serialized as text) with the gateway and returns the transaction token.
// Any non-"1" return code, and any transport failure, comes back as a
// *GatewayError.
func (g *Gateway) CreateOrder(ctx context.Context, userID, amountMinorUnits string) (Order, error) {
	appTransID := newAppTransID()

	form := url.Values{}
	form.Set("app_id", g.cfg.AppID)
	form.Set("app_user", userID)
	form.Set("app_time", strconv.FormatInt(time.Now().UnixMilli(), 10))
	form.Set("amount", amountMinorUnits)
	form.Set("app_trans_id", appTransID)
	form.Set("embed_data", "{}")
	form.Set("item", "[]")
	form.Set("description", "Food order "+appTransID)
	form.Set("callback_url", g.cfg.CallbackURL)
	form.Set("mac", g.sign(
		g.cfg.AppID, appTransID, userID,
		amountMinorUnits, form.Get("app_time"), "{}", "[]",
	))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Order{}, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.ErrorContext(ctx, "gateway unreachable", slog.Any("error", err))
		return Order{}, &GatewayError{Message: "gateway unreachable"}
	}
	defer resp.Body.Close()

	var body createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Order{}, &GatewayError{Message: "malformed gateway response"}
	}

	if body.ReturnCode.String() != "1" {
		return Order{}, &GatewayError{
			Code:    body.ReturnCode.String(),
			Message: body.ReturnMessage,
		}
	}

	g.logger.DebugContext(ctx, "payment order created",
		slog.String("app_trans_id", appTransID))

	return Order{Token: body.TransToken, AppTransID: appTransID}, nil
}

// CallbackData is the payload the gateway posts back once the wallet flow
// finishes.
type CallbackData struct {
	AppTransID    string `json:"app_trans_id"`
	TransactionID string `json:"zp_trans_id"`
	Status        string `json:"status"`
	ErrorCode     string `json:"error_code"`
}

type callbackEnvelope struct {
	Data string `json:"data"`
	MAC  string `json:"mac"`
}

// ParseCallback verifies the callback HMAC with the second key and decodes
// the payload. A signature mismatch is ErrBadSignature.
func (g *Gateway) ParseCallback(body []byte) (CallbackData, error) {
	var env callbackEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return CallbackData{}, fmt.Errorf("malformed callback: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(g.cfg.Key2))
	mac.Write([]byte(env.Data))
	if !hmac.Equal([]byte(hex.EncodeToString(mac.Sum(nil))), []byte(env.MAC)) {
		return CallbackData{}, ErrBadSignature
	}

	var data CallbackData
	if err := json.Unmarshal([]byte(env.Data), &data); err != nil {
		return CallbackData{}, fmt.Errorf("malformed callback data: %w", err)
	}
	return data, nil
}

func (g *Gateway) sign(fields ...string) string {
	mac := hmac.New(sha256.New, []byte(g.cfg.Key1))
	mac.Write([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(mac.Sum(nil))
}

// newAppTransID follows the gateway's yymmdd_<unique> transaction id format.
func newAppTransID() string {
	return fmt.Sprintf("%s_%s", time.Now().Format("060102"), uuid.NewString())
}
