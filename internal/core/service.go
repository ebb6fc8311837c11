package core

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Rorical/RoriGen/internal/eventbus"
	"github.com/Rorical/RoriGen/internal/logger"
)

var ErrNotConfigured = errors.New("generation provider not configured")

// GenerationService runs generation calls off the UI loop and publishes
// each settled call back to the UI.
type GenerationService struct {
	generator Generator
	eventBus  *eventbus.EventBus
	state     *RequestState
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewGenerationService creates a service regardless of generator validity;
// with a nil generator every request fails with ErrNotConfigured.
func NewGenerationService(gen Generator, eb *eventbus.EventBus) *GenerationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &GenerationService{
		generator: gen,
		eventBus:  eb,
		state:     NewRequestState(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start runs the core logic in a goroutine
func (gs *GenerationService) Start() {
	gs.wg.Add(1)
	go func() {
		defer gs.wg.Done()
		gs.eventLoop()
	}()
}

// Stop cancels outstanding calls and waits for their goroutines.
func (gs *GenerationService) Stop() {
	gs.cancel()
	gs.state.CancelAll()
	gs.wg.Wait()
}

func (gs *GenerationService) IsReady() bool {
	return gs.generator != nil
}

func (gs *GenerationService) eventLoop() {
	for {
		select {
		case <-gs.ctx.Done():
			return
		case <-gs.eventBus.Done():
			return
		case event := <-gs.eventBus.UIToCore():
			gs.handleUIEvent(event)
		}
	}
}

func (gs *GenerationService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.GenerateEvent:
		gs.processGenerate(e)
	}
}

func (gs *GenerationService) processGenerate(e eventbus.GenerateEvent) {
	log := logger.WithFields(logrus.Fields{
		"request_id": e.RequestID,
		"trace_id":   e.TraceID,
	})

	if gs.generator == nil {
		log.Warn("generation requested without a configured provider")
		gs.publish(eventbus.GenerationResultEvent{RequestID: e.RequestID, TraceID: e.TraceID, Err: ErrNotConfigured})
		return
	}

	reqCtx, cancel := context.WithCancel(gs.ctx)
	if n := gs.state.Begin(e.RequestID, cancel); n > 0 {
		log.Debugf("superseded %d in-flight request(s)", n)
	}

	gs.wg.Add(1)
	go func() {
		defer gs.wg.Done()
		defer gs.state.Finish(e.RequestID)

		log.Infof("generating (%d bytes of prompt)", len(e.Prompt))
		text, err := gs.generator.Generate(reqCtx, e.Prompt)
		if !gs.state.IsLatest(e.RequestID) {
			// A newer prompt owns the session; its result is the only one shown.
			log.Debugf("dropping superseded result (err: %v)", err)
			return
		}
		if err != nil {
			log.Errorf("generation failed: %v", err)
		} else {
			log.Infof("generation finished (%d bytes)", len(text))
		}

		gs.publish(eventbus.GenerationResultEvent{
			RequestID: e.RequestID,
			TraceID:   e.TraceID,
			Text:      text,
			Err:       err,
		})
	}()
}

func (gs *GenerationService) publish(ev eventbus.GenerationResultEvent) {
	if err := gs.eventBus.SendToUI(ev); err != nil {
		logger.Errorf("Error sending result to UI: %v", err)
	}
}
