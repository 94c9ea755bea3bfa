package rater

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/art-rater/internal/model"
)

var (
	ErrDuplicateItem = errors.New("artwork already in list")
	ErrItemNotFound  = errors.New("artwork not in list")
)

// Service is the keyed collection of items shown in the window
type Service struct {
	ctx        context.Context
	deps       Dependencies
	items      map[int]*Item
	order      []int
	itemsMutex sync.RWMutex
	onUpdate   func(*Item) // callback for UI updates
}

// Option configures a Service
type Option func(*Service)

// WithLauncher sets how items start their requests
func WithLauncher(launch Launcher) Option {
	return func(s *Service) {
		if launch != nil {
			s.deps.Launch = launch
		}
	}
}

// WithContext sets the parent context of every item
func WithContext(ctx context.Context) Option {
	return func(s *Service) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// NewService creates an empty collection
func NewService(source ArtworkSource, submitter RatingSubmitter, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		ctx: context.Background(),
		deps: Dependencies{
			Source:    source,
			Submitter: submitter,
			Notifier:  notifier,
			Launch:    goLauncher,
		},
		items: make(map[int]*Item),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUpdateCallback sets the callback function for item updates
func (s *Service) SetUpdateCallback(callback func(*Item)) {
	s.itemsMutex.Lock()
	s.onUpdate = callback
	s.itemsMutex.Unlock()
}

// AddItem appends a new item and starts loading its artwork
func (s *Service) AddItem(id int) (*Item, error) {
	if id <= 0 {
		return nil, model.ErrInvalidArtID
	}

	s.itemsMutex.Lock()
	if _, exists := s.items[id]; exists {
		s.itemsMutex.Unlock()
		return nil, fmt.Errorf("%w: %d", ErrDuplicateItem, id)
	}
	item := NewItem(s.ctx, id, s.deps, s.notifyUpdate)
	s.items[id] = item
	s.order = append(s.order, id)
	s.itemsMutex.Unlock()

	logrus.WithField("art_id", id).Info("Artwork added")
	item.Load()
	return item, nil
}

// AddItems adds every id, skipping the ones that fail
func (s *Service) AddItems(ids []int) []*Item {
	added := make([]*Item, 0, len(ids))
	for _, id := range ids {
		item, err := s.AddItem(id)
		if err != nil {
			logrus.WithField("art_id", id).WithError(err).Warn("Skipping artwork")
			continue
		}
		added = append(added, item)
	}
	return added
}

// RemoveItem drops an item; its pending responses are discarded
func (s *Service) RemoveItem(id int) error {
	s.itemsMutex.Lock()
	item, exists := s.items[id]
	if !exists {
		s.itemsMutex.Unlock()
		return fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.itemsMutex.Unlock()

	item.Remove()
	logrus.WithField("art_id", id).Info("Artwork removed")
	return nil
}

// GetItem returns an item by art ID
func (s *Service) GetItem(id int) (*Item, bool) {
	s.itemsMutex.RLock()
	defer s.itemsMutex.RUnlock()
	item, exists := s.items[id]
	return item, exists
}

// Items returns all items in insertion order
func (s *Service) Items() []*Item {
	s.itemsMutex.RLock()
	defer s.itemsMutex.RUnlock()

	items := make([]*Item, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items
}

// Len returns the number of items
func (s *Service) Len() int {
	s.itemsMutex.RLock()
	defer s.itemsMutex.RUnlock()
	return len(s.order)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(item *Item) {
	s.itemsMutex.RLock()
	callback := s.onUpdate
	s.itemsMutex.RUnlock()

	if callback != nil {
		callback(item)
	}
}
