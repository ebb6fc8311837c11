package eventbus

import (
	"errors"
	"sync"
	"time"
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// GenerateEvent - UI asks core to run one generation call
type GenerateEvent struct {
	RequestID uint64
	TraceID   string // Correlates log lines of one request
	Prompt    string
}

func (e GenerateEvent) UIEvent() {}

// GenerationResultEvent - Core reports the settled call
type GenerationResultEvent struct {
	RequestID uint64
	TraceID   string
	Text      string
	Err       error
}

func (e GenerationResultEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error {
	return e.Err
}

var (
	ErrCircuitOpen = errors.New("circuit breaker is open")
	ErrChannelFull = errors.New("channel is full")
	ErrClosed      = errors.New("event bus is closed")
)

// CircuitBreakerState represents the state of circuit breaker
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitBreakerState) String() string {
	switch s {
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	}
	return "closed"
}

// CircuitBreaker stops delivery after repeated send failures until
// resetTimeout has passed.
type CircuitBreaker struct {
	mu              sync.Mutex
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           CircuitBreakerState
	now             func() time.Time
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
		now:          time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == CircuitOpen && cb.now().Sub(cb.lastFailureTime) > cb.resetTimeout {
		cb.state = CircuitHalfOpen
	}
	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount = 0
	cb.state = CircuitClosed
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	if cb.failureCount >= cb.maxFailures {
		cb.state = CircuitOpen
	}
}

func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// EventBus handles communication between UI and Core with circuit breaker
type EventBus struct {
	uiToCore       chan UIEvent
	coreToUI       chan CoreEvent
	errorCallback  func(EventBusError)
	circuitBreaker *CircuitBreaker

	closeOnce sync.Once
	closed    chan struct{}
}

func NewEventBus() *EventBus {
	return NewEventBusWithSize(100)
}

func NewEventBusWithSize(size int) *EventBus {
	return &EventBus{
		uiToCore:       make(chan UIEvent, size),
		coreToUI:       make(chan CoreEvent, size),
		circuitBreaker: NewCircuitBreaker(5, 30*time.Second),
		closed:         make(chan struct{}),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) error {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}

	eb.circuitBreaker.RecordFailure()

	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
	return busError
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	if eb.isClosed() {
		return eb.reportError("SendToCore", ErrClosed)
	}
	if eb.circuitBreaker.IsOpen() {
		return eb.reportError("SendToCore", ErrCircuitOpen)
	}

	select {
	case eb.uiToCore <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		return eb.reportError("SendToCore", ErrChannelFull)
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	if eb.isClosed() {
		return eb.reportError("SendToUI", ErrClosed)
	}
	if eb.circuitBreaker.IsOpen() {
		return eb.reportError("SendToUI", ErrCircuitOpen)
	}

	select {
	case eb.coreToUI <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		return eb.reportError("SendToUI", ErrChannelFull)
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

// Done is closed once the bus is closed.
func (eb *EventBus) Done() <-chan struct{} {
	return eb.closed
}

func (eb *EventBus) GetCircuitBreakerState() CircuitBreakerState {
	return eb.circuitBreaker.State()
}

func (eb *EventBus) isClosed() bool {
	select {
	case <-eb.closed:
		return true
	default:
		return false
	}
}

// Close signals shutdown. The data channels stay open so a late send from a
// finishing goroutine cannot panic; readers select on Done instead.
func (eb *EventBus) Close() {
	eb.closeOnce.Do(func() {
		close(eb.closed)
	})
}
