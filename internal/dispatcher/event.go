package dispatcher

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Rorical/RoriGen/internal/eventbus"
)

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// EventDispatcher handles routing events between core and UI
type EventDispatcher struct {
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewEventDispatcher(eventBus *eventbus.EventBus) *EventDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &EventDispatcher{
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (ed *EventDispatcher) Stop() {
	ed.cancel()
}

// RequestGeneration forwards one prompt to the core.
func (ed *EventDispatcher) RequestGeneration(requestID uint64, prompt string) error {
	return ed.eventBus.SendToCore(eventbus.GenerateEvent{
		RequestID: requestID,
		TraceID:   uuid.NewString(),
		Prompt:    prompt,
	})
}

// ListenForCoreEvents blocks until the core publishes an event. The UI
// re-issues it after every CoreEventMsg so exactly one listener is pending.
func (ed *EventDispatcher) ListenForCoreEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ed.ctx.Done():
			return nil
		case <-ed.eventBus.Done():
			return nil
		case ev := <-ed.eventBus.CoreToUI():
			return CoreEventMsg{Event: ev}
		}
	}
}
