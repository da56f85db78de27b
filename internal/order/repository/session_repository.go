package repository

import (
	"container/list"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/CiaoGab/Restaurant-Order-App/internal/errors"
	"github.com/CiaoGab/Restaurant-Order-App/internal/widget"
)

type session struct {
	id        string
	state     widget.State
	touchedAt time.Time
}

// MemorySessionRepository keeps one widget.State per page session. Updates
// to a session run under the repository lock, one at a time.
//
// Sessions are kept in touch order, most recent first. When maxSessions is
// reached, Create drops the least recently touched one.
type MemorySessionRepository struct {
	mu          sync.Mutex
	sessions    map[string]*list.Element
	order       *list.List
	maxSessions int
	now         func() time.Time
}

// NewMemorySessionRepository returns an empty store holding at most
// maxSessions sessions. Zero or less means no cap.
func NewMemorySessionRepository(maxSessions int) *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions:    make(map[string]*list.Element),
		order:       list.New(),
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

func (r *MemorySessionRepository) Create(ctx context.Context, state widget.State) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()

	for r.maxSessions > 0 && r.order.Len() >= r.maxSessions {
		r.remove(r.order.Back())
	}
	r.sessions[id] = r.order.PushFront(&session{id: id, state: state, touchedAt: r.now()})
	return id, nil
}

func (r *MemorySessionRepository) FindByID(ctx context.Context, id string) (widget.State, error) {
	if err := ctx.Err(); err != nil {
		return widget.State{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.touch(id)
	if !ok {
		return widget.State{}, sessionNotFound(id)
	}
	return s.state, nil
}

// Update replaces the session state with fn's result. When fn fails the
// stored state is left as it was.
func (r *MemorySessionRepository) Update(ctx context.Context, id string, fn func(widget.State) (widget.State, error)) (widget.State, error) {
	if err := ctx.Err(); err != nil {
		return widget.State{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.touch(id)
	if !ok {
		return widget.State{}, sessionNotFound(id)
	}

	next, err := fn(s.state)
	if err != nil {
		return s.state, err
	}
	s.state = next
	return next, nil
}

// EvictIdle drops sessions not touched within ttl and reports how many went.
func (r *MemorySessionRepository) EvictIdle(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-ttl)
	evicted := 0
	for e := r.order.Back(); e != nil; e = r.order.Back() {
		if !e.Value.(*session).touchedAt.Before(cutoff) {
			break
		}
		r.remove(e)
		evicted++
	}
	return evicted
}

func (r *MemorySessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}

// RunJanitor evicts idle sessions every interval until ctx is done.
func (r *MemorySessionRepository) RunJanitor(ctx context.Context, ttl, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.EvictIdle(ttl); n > 0 {
				logger.Debug("evicted idle sessions", zap.Int("count", n), zap.Int("remaining", r.Len()))
			}
		}
	}
}

// touch marks id as used now. Callers hold r.mu.
func (r *MemorySessionRepository) touch(id string) (*session, bool) {
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	s := e.Value.(*session)
	s.touchedAt = r.now()
	r.order.MoveToFront(e)
	return s, true
}

func (r *MemorySessionRepository) remove(e *list.Element) {
	s := r.order.Remove(e).(*session)
	delete(r.sessions, s.id)
}

func sessionNotFound(id string) error {
	return apperrors.NewNotFoundError(apperrors.ResourceSession, fmt.Sprintf("session %q not found", id))
}
