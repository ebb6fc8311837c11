package core

import (
	"context"
	"sync"
)

// RequestState tracks in-flight generation calls so a newer request can
// cancel older ones and shutdown can cancel everything.
type RequestState struct {
	mu       sync.Mutex
	inFlight map[uint64]context.CancelFunc
	latest   uint64
}

func NewRequestState() *RequestState {
	return &RequestState{
		inFlight: make(map[uint64]context.CancelFunc),
	}
}

// Begin registers a request and cancels every older one still running.
// It returns the number of requests it superseded.
func (rs *RequestState) Begin(id uint64, cancel context.CancelFunc) int {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	superseded := 0
	for other, c := range rs.inFlight {
		if other < id {
			c()
			delete(rs.inFlight, other)
			superseded++
		}
	}
	if id > rs.latest {
		rs.latest = id
	}
	rs.inFlight[id] = cancel
	return superseded
}

// Finish releases a request. Safe to call for a request already superseded.
func (rs *RequestState) Finish(id uint64) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if cancel, ok := rs.inFlight[id]; ok {
		cancel()
		delete(rs.inFlight, id)
	}
}

func (rs *RequestState) IsLatest(id uint64) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return id == rs.latest
}

func (rs *RequestState) InFlight() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.inFlight)
}

func (rs *RequestState) CancelAll() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for id, cancel := range rs.inFlight {
		cancel()
		delete(rs.inFlight, id)
	}
}
