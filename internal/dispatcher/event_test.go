package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriGen/internal/eventbus"
)

func TestRequestGenerationSendsEvent(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)
	defer ed.Stop()

	require.NoError(t, ed.RequestGeneration(7, "hello"))

	ev := <-eb.UIToCore()
	gen, ok := ev.(eventbus.GenerateEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(7), gen.RequestID)
	assert.Equal(t, "hello", gen.Prompt)
	assert.NotEmpty(t, gen.TraceID)
}

func TestListenForCoreEvents(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)
	defer ed.Stop()

	require.NoError(t, eb.SendToUI(eventbus.GenerationResultEvent{RequestID: 3, Text: "hi"}))

	msg := ed.ListenForCoreEvents()()
	coreMsg, ok := msg.(CoreEventMsg)
	require.True(t, ok)
	res, ok := coreMsg.Event.(eventbus.GenerationResultEvent)
	require.True(t, ok)
	assert.Equal(t, "hi", res.Text)
}

func TestListenReturnsNilAfterStop(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)
	ed.Stop()

	assert.Nil(t, ed.ListenForCoreEvents()())
}
