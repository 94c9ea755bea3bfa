package toast

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/art-rater/internal/model"
)

// DefaultDuration is how long a message stays visible unless overridden
const DefaultDuration = 10 * time.Second

type entry struct {
	seq   uint64
	msg   model.ToastMessage
	timer *time.Timer
}

// Service keeps the active set of toast messages
type Service struct {
	mu       sync.Mutex
	entries  map[string]*entry
	nextSeq  uint64
	duration time.Duration
	now      func() time.Time
	onUpdate func([]model.ToastMessage)
}

// Option configures a Service
type Option func(*Service)

// WithDuration sets the auto-dismiss duration for new messages
func WithDuration(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.duration = d
		}
	}
}

// NewService creates a new toast service
func NewService(opts ...Option) *Service {
	s := &Service{
		entries:  make(map[string]*entry),
		duration: DefaultDuration,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUpdateCallback sets the function called with the active set after every change.
// Callbacks run outside the lock, so snapshots of concurrent changes may arrive
// out of order; Active always returns the current set.
func (s *Service) SetUpdateCallback(callback func([]model.ToastMessage)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetDuration changes the duration used for messages pushed from now on
func (s *Service) SetDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.duration = d
	s.mu.Unlock()
}

// Duration returns the current auto-dismiss duration
func (s *Service) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

// Push adds a message and returns its ID. It never waits for the UI.
func (s *Service) Push(kind model.ToastKind, description string) string {
	s.mu.Lock()
	now := s.now()
	msg := model.ToastMessage{
		ID:          uuid.NewString(),
		Kind:        kind,
		Description: description,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.duration),
	}
	id := msg.ID
	s.nextSeq++
	s.entries[id] = &entry{
		seq:   s.nextSeq,
		msg:   msg,
		timer: time.AfterFunc(s.duration, func() { s.expire(id) }),
	}
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"toast_id": id,
		"kind":     kind,
	}).Debug("Toast pushed")

	s.notifyUpdate()
	return id
}

// Dismiss removes a message immediately. It returns false if the message is
// no longer active.
func (s *Service) Dismiss(id string) bool {
	if !s.remove(id) {
		return false
	}
	logrus.WithField("toast_id", id).Debug("Toast dismissed")
	s.notifyUpdate()
	return true
}

// Active returns the visible messages, oldest first
func (s *Service) Active() []model.ToastMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close stops all pending timers and drops every message
func (s *Service) Close() {
	s.mu.Lock()
	for id, e := range s.entries {
		e.timer.Stop()
		delete(s.entries, id)
	}
	s.mu.Unlock()
	s.notifyUpdate()
}

func (s *Service) expire(id string) {
	if !s.remove(id) {
		return
	}
	logrus.WithField("toast_id", id).Debug("Toast expired")
	s.notifyUpdate()
}

func (s *Service) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.entries, id)
	return true
}

func (s *Service) snapshotLocked() []model.ToastMessage {
	ordered := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		ordered = append(ordered, e)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].seq < ordered[j].seq })

	messages := make([]model.ToastMessage, len(ordered))
	for i, e := range ordered {
		messages[i] = e.msg
	}
	return messages
}

// notifyUpdate calls the update callback outside the lock
func (s *Service) notifyUpdate() {
	s.mu.Lock()
	callback := s.onUpdate
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}
