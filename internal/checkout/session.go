package checkout

import (
	"errors"
	"sync"

	"github.com/mealio/food-order-service/internal/entities"
)

type State string

const (
	StateIdle            State = "idle"
	StateAddressSelected State = "address_selected"
	StateAwaitingToken   State = "awaiting_token"
	StateAwaitingResult  State = "awaiting_result"
	StateSubmitting      State = "submitting"
	StateCompleted       State = "completed"
	StateFailed          State = "failed"
)

var (
	ErrNoAddress        = errors.New("no delivery address selected")
	ErrInvalidMethod    = errors.New("invalid payment method")
	ErrCheckoutBusy     = errors.New("checkout already in progress")
	ErrUnexpectedToken  = errors.New("token received in unexpected state")
	ErrUnexpectedResult = errors.New("payment result received in unexpected state")
	ErrSessionNotFound  = errors.New("checkout session not found")
)

// Session is the state of one checkout attempt. Every transition is an
// explicit event guarded by the current state; a stray token or a duplicate
// webhook delivery is rejected instead of silently restarting the flow.
type Session struct {
	mu sync.Mutex

	userID     string
	addressID  string
	method     entities.PaymentMethod
	state      State
	token      string
	appTransID string

	result  *entities.PaymentResult
	orderID string
	errMsg  string

	// resultCh carries the wallet outcome from the gateway callback to the
	// goroutine driving the current attempt. Buffered so delivery never
	// blocks the webhook handler. Allocated anew for every attempt: a result
	// delivered in the instant before a timed-out attempt settles stays in
	// the retired channel and can never resolve a later attempt.
	resultCh chan entities.PaymentResult
}

func newSession(userID string) *Session {
	return &Session{
		userID: userID,
		state:  StateIdle,
	}
}

func (s *Session) begin(addressID string, method entities.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if addressID == "" {
		return ErrNoAddress
	}
	if !method.Valid() {
		return ErrInvalidMethod
	}
	switch s.state {
	case StateIdle, StateAddressSelected:
	default:
		return ErrCheckoutBusy
	}

	s.addressID = addressID
	s.method = method
	s.state = StateAddressSelected
	s.result = nil
	s.errMsg = ""
	return nil
}

func (s *Session) awaitToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAwaitingToken
}

// tokenReceived is consumed exactly once: a second token arriving for the
// same attempt is rejected rather than restarting the payment flow. It hands
// back this attempt's result channel.
func (s *Session) tokenReceived(token, appTransID string) (chan entities.PaymentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaitingToken {
		return nil, ErrUnexpectedToken
	}
	s.token = token
	s.appTransID = appTransID
	s.state = StateAwaitingResult
	s.resultCh = make(chan entities.PaymentResult, 1)
	return s.resultCh, nil
}

func (s *Session) deliverResult(result entities.PaymentResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaitingResult {
		return ErrUnexpectedResult
	}
	select {
	case s.resultCh <- result:
		return nil
	default:
		return ErrUnexpectedResult
	}
}

func (s *Session) submitting() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateSubmitting
	s.token = ""
}

func (s *Session) completed(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateCompleted
	s.orderID = orderID
	s.token = ""
}

func (s *Session) failed(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateFailed
	s.errMsg = message
	s.token = ""
}

// backToSelection records a non-error wallet outcome (cancel, provider error)
// and returns the session to the selection state so the user can retry.
func (s *Session) backToSelection(result entities.PaymentResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAddressSelected
	s.result = &result
	s.token = ""
	s.appTransID = ""
}

// Outcome is the presentation-facing snapshot of a session.
type Outcome struct {
	State         State
	OrderID       string
	Error         string
	PaymentResult *entities.PaymentResult
}

func (s *Session) snapshot() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Outcome{
		State:         s.state,
		OrderID:       s.orderID,
		Error:         s.errMsg,
		PaymentResult: s.result,
	}
}

// consume returns the one-shot outcome and resets terminal state back to
// Idle, clearing any pending payment result.
func (s *Session) consume() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Outcome{
		State:         s.state,
		OrderID:       s.orderID,
		Error:         s.errMsg,
		PaymentResult: s.result,
	}

	switch s.state {
	case StateCompleted, StateFailed:
		s.state = StateIdle
		s.orderID = ""
		s.errMsg = ""
		s.result = nil
	case StateAddressSelected:
		s.result = nil
	}
	return out
}

func (s *Session) currentState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
