package checkout

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/internal/payment"

	"github.com/shopspring/decimal"
)

type Gateway interface {
	CreateOrder(ctx context.Context, userID, amountMinorUnits string) (payment.Order, error)
}

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, userID, addressID string, method entities.PaymentMethod) (entities.Order, error)
}

type CartReader interface {
	ListCart(ctx context.Context, userID string) (entities.Cart, error)
}

type AddressLister interface {
	ListByUser(ctx context.Context, userID string) ([]entities.Address, error)
}

// Coordinator sequences address/payment selection, the optional wallet
// round-trip and order persistence. It owns one live session per user.
type Coordinator struct {
	logger      *slog.Logger
	gateway     Gateway
	orders      OrderPlacer
	carts       CartReader
	addresses   AddressLister
	deliveryFee decimal.Decimal

	// resultTimeout bounds the wait for the wallet callback so a killed
	// wallet flow cannot park a session forever.
	resultTimeout time.Duration

	mu        sync.Mutex
	sessions  map[string]*Session
	byTransID map[string]*Session
	onSettled func() // test hook, called after a wallet session settles
}

func NewCoordinator(
	logger *slog.Logger,
	gateway Gateway,
	orders OrderPlacer,
	carts CartReader,
	addresses AddressLister,
	deliveryFee decimal.Decimal,
	resultTimeout time.Duration,
) *Coordinator {
	return &Coordinator{
		logger:        logger.With(slog.String("component", "checkout")),
		gateway:       gateway,
		orders:        orders,
		carts:         carts,
		addresses:     addresses,
		deliveryFee:   deliveryFee,
		resultTimeout: resultTimeout,
		sessions:      make(map[string]*Session),
		byTransID:     make(map[string]*Session),
	}
}

// Info is what the delivery screen renders: the user's addresses, the totals
// breakdown, and an auto-selected address when there is exactly one.
type Info struct {
	Addresses      []entities.Address
	AutoSelectedID string
	Summary        entities.CartSummary
	Cart           entities.Cart
}

func (c *Coordinator) Info(ctx context.Context, userID string) (Info, error) {
	addresses, err := c.addresses.ListByUser(ctx, userID)
	if err != nil {
		return Info{}, err
	}
	cart, err := c.carts.ListCart(ctx, userID)
	if err != nil {
		return Info{}, err
	}

	info := Info{
		Addresses: addresses,
		Cart:      cart,
		Summary:   entities.Summarize(cart, c.deliveryFee),
	}
	if len(addresses) == 1 {
		info.AutoSelectedID = addresses[0].ID
	}
	return info, nil
}

// StartResult is what the client needs to continue: the order id for a cash
// checkout, or the wallet token to launch the payment flow.
type StartResult struct {
	OrderID string
	Token   string
}

// Start begins one checkout attempt. The cash path submits the order
// directly; the wallet path obtains a gateway token and then waits for the
// payment callback in the background.
func (c *Coordinator) Start(ctx context.Context, userID, addressID string, method entities.PaymentMethod) (StartResult, error) {
	session := c.sessionFor(userID)

	if err := session.begin(addressID, method); err != nil {
		return StartResult{}, err
	}

	if method == entities.PaymentCash {
		return c.submit(ctx, session)
	}
	return c.startWalletPayment(ctx, session)
}

func (c *Coordinator) submit(ctx context.Context, session *Session) (StartResult, error) {
	session.submitting()

	order, err := c.orders.PlaceOrder(ctx, session.userID, session.addressID, session.method)
	if err != nil {
		// The cart is preserved on failure, the user may retry.
		session.failed(err.Error())
		return StartResult{}, err
	}

	session.completed(order.ID)
	return StartResult{OrderID: order.ID}, nil
}

func (c *Coordinator) startWalletPayment(ctx context.Context, session *Session) (StartResult, error) {
	cart, err := c.carts.ListCart(ctx, session.userID)
	if err != nil {
		session.failed(err.Error())
		return StartResult{}, err
	}
	if len(cart) == 0 {
		session.failed(entities.ErrEmptyCart.Error())
		return StartResult{}, entities.ErrEmptyCart
	}

	amount := entities.GatewayAmount(entities.Summarize(cart, c.deliveryFee).Total)

	session.awaitToken()
	order, err := c.gateway.CreateOrder(ctx, session.userID, amount)
	if err != nil {
		// No token, no payment flow: back to selection, cart untouched.
		session.backToSelection(entities.PaymentResult{
			Status:    entities.PaymentFailed,
			ErrorCode: err.Error(),
		})
		return StartResult{}, err
	}

	// Token arrival is an explicit event; a second token for the same
	// attempt would be rejected here.
	resultCh, err := session.tokenReceived(order.Token, order.AppTransID)
	if err != nil {
		return StartResult{}, err
	}

	c.mu.Lock()
	c.byTransID[order.AppTransID] = session
	c.mu.Unlock()

	go c.awaitResult(session, resultCh)

	c.logger.InfoContext(ctx, "awaiting wallet payment",
		slog.String("user_id", session.userID),
		slog.String("app_trans_id", order.AppTransID))

	return StartResult{Token: order.Token}, nil
}

// CompletePayment resumes the session waiting on appTransID with the wallet
// outcome. Duplicate or late callbacks are rejected.
func (c *Coordinator) CompletePayment(appTransID string, result entities.PaymentResult) error {
	c.mu.Lock()
	session, ok := c.byTransID[appTransID]
	c.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	return session.deliverResult(result)
}

func (c *Coordinator) awaitResult(session *Session, resultCh <-chan entities.PaymentResult) {
	appTransID := session.appTransID
	defer func() {
		c.mu.Lock()
		delete(c.byTransID, appTransID)
		c.mu.Unlock()
		if c.onSettled != nil {
			c.onSettled()
		}
	}()

	var result entities.PaymentResult
	select {
	case result = <-resultCh:
	case <-time.After(c.resultTimeout):
		c.logger.Warn("wallet payment timed out",
			slog.String("user_id", session.userID),
			slog.String("app_trans_id", appTransID))
		session.failed("payment result timed out")
		return
	}

	switch result.Status {
	case entities.PaymentSucceeded:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := c.submit(ctx, session); err != nil {
			c.logger.Error("order submission after payment failed",
				slog.String("user_id", session.userID), slog.Any("error", err))
		}
	case entities.PaymentCanceled:
		// A cancel is a normal return to selection, not an error.
		session.backToSelection(result)
	default:
		session.backToSelection(result)
	}
}

// Result returns the session outcome. Terminal outcomes are one-shot:
// reading them resets the session to Idle and releases the session entry.
func (c *Coordinator) Result(userID string) (Outcome, bool) {
	c.mu.Lock()
	session, ok := c.sessions[userID]
	c.mu.Unlock()
	if !ok {
		return Outcome{State: StateIdle}, false
	}

	out := session.consume()

	if out.State == StateCompleted || out.State == StateFailed {
		c.mu.Lock()
		// Сессия могла уйти в новую попытку, пока мы не держали замок.
		if cur, live := c.sessions[userID]; live && cur == session && session.currentState() == StateIdle {
			delete(c.sessions, userID)
		}
		c.mu.Unlock()
	}
	return out, true
}

// State exposes the current machine state without consuming anything.
func (c *Coordinator) State(userID string) State {
	c.mu.Lock()
	session, ok := c.sessions[userID]
	c.mu.Unlock()
	if !ok {
		return StateIdle
	}
	return session.currentState()
}

func (c *Coordinator) sessionFor(userID string) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, ok := c.sessions[userID]
	if !ok {
		session = newSession(userID)
		c.sessions[userID] = session
	}
	return session
}
