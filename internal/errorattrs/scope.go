// Package errorattrs captures what happened while a request failed and turns
// it into error attributes.
//
// The handler, the error and the response status of a failed request are
// kept in a Scope carried by the request's context.Context. Nothing is stored
// per goroutine, so a request that hops goroutines keeps its scope and two
// concurrent requests never see each other's state.
package errorattrs

import (
	"context"
	"sync"
)

type scopeKey struct{}

// Scope is the error state of one request.
type Scope struct {
	mu        sync.RWMutex
	requestID string
	handler   string
	err       error
	status    int
	hasStatus bool
}

// NewContext returns a child of ctx carrying a fresh scope for requestID.
func NewContext(ctx context.Context, requestID string) (context.Context, *Scope) {
	scope := &Scope{requestID: requestID}
	return context.WithValue(ctx, scopeKey{}, scope), scope
}

// FromContext returns the scope carried by ctx.
func FromContext(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(*Scope)
	return scope, ok && scope != nil
}

// RequestID returns the ID the scope was opened with.
func (s *Scope) RequestID() string {
	return s.requestID
}

// Handler returns the handler recorded for the failure, if any.
func (s *Scope) Handler() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handler
}

func (s *Scope) record(handler string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
	s.err = err
}

func (s *Scope) cause() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Scope) setStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.hasStatus = true
}

func (s *Scope) recordedStatus() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.hasStatus
}
