package rater

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/art-rater/internal/model"
)

var (
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrNoRating           = errors.New("no rating selected")
	ErrNotLoaded          = errors.New("artwork is not loaded")
	ErrSubmissionInFlight = errors.New("submission already in progress")
	ErrAlreadyRated       = errors.New("artwork already rated")
)

// Snapshot is a consistent copy of an item's state for rendering.
type Snapshot struct {
	ID         int
	Artwork    model.State[*model.Artwork]
	Rating     model.Rating
	Submission model.State[string]
	CanSubmit  bool
}

// Item drives the fetch and rating-submission state machines of one artwork.
// All transitions happen under mu; completions of requests that are no longer
// the latest for this item are dropped.
type Item struct {
	mu sync.Mutex

	id         int
	artwork    model.State[*model.Artwork]
	rating     model.Rating
	submission model.State[string]

	// request generations, bumped on every new request and on removal
	fetchGen  uint64
	submitGen uint64
	removed   bool

	ctx      context.Context
	cancel   context.CancelFunc
	deps     Dependencies
	onUpdate func(*Item)
}

// NewItem creates an idle item. ctx bounds the lifetime of its requests and
// is canceled by Remove.
func NewItem(ctx context.Context, id int, deps Dependencies, onUpdate func(*Item)) *Item {
	if deps.Launch == nil {
		deps.Launch = goLauncher
	}
	itemCtx, cancel := context.WithCancel(ctx)
	return &Item{
		id:         id,
		artwork:    model.Idle[*model.Artwork]{},
		submission: model.Idle[string]{},
		ctx:        itemCtx,
		cancel:     cancel,
		deps:       deps,
		onUpdate:   onUpdate,
	}
}

// ID returns the current art identifier
func (it *Item) ID() int {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.id
}

// Rating returns the selected rating, zero when none
func (it *Item) Rating() model.Rating {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.rating
}

// CanSubmit reports whether Submit would start a request
func (it *Item) CanSubmit() bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.submitCheckLocked() == nil
}

// Snapshot returns the current state of both machines
func (it *Item) Snapshot() Snapshot {
	it.mu.Lock()
	defer it.mu.Unlock()
	return Snapshot{
		ID:         it.id,
		Artwork:    it.artwork,
		Rating:     it.rating,
		Submission: it.submission,
		CanSubmit:  it.submitCheckLocked() == nil,
	}
}

// Load moves the fetch machine to loading and issues one artwork read.
func (it *Item) Load() {
	it.mu.Lock()
	if it.removed {
		it.mu.Unlock()
		return
	}
	it.fetchGen++
	gen, id := it.fetchGen, it.id
	it.artwork = model.Loading[*model.Artwork]{}
	it.mu.Unlock()

	logrus.WithField("art_id", id).Debug("Loading artwork")
	it.notifyUpdate()
	it.deps.Launch(func() { it.fetch(id, gen) })
}

// SetID switches the item to a new identifier. The rating selection and any
// submission outcome belong to the old artwork and are reset.
func (it *Item) SetID(id int) error {
	if id <= 0 {
		return model.ErrInvalidArtID
	}
	it.mu.Lock()
	if it.id == id {
		it.mu.Unlock()
		return nil
	}
	it.id = id
	it.rating = 0
	it.submitGen++
	it.submission = model.Idle[string]{}
	it.mu.Unlock()

	it.Load()
	return nil
}

// SelectRating stores the user's choice. It is refused while a submission is
// in flight and after the artwork was rated.
func (it *Item) SelectRating(r model.Rating) error {
	if !r.Valid() {
		return ErrInvalidRating
	}

	it.mu.Lock()
	switch {
	case model.StatusOf[*model.Artwork](it.artwork) != model.FetchStatusSuccess:
		it.mu.Unlock()
		return ErrNotLoaded
	case model.StatusOf[string](it.submission) == model.FetchStatusLoading:
		it.mu.Unlock()
		return ErrSubmissionInFlight
	case model.StatusOf[string](it.submission) == model.FetchStatusSuccess:
		it.mu.Unlock()
		return ErrAlreadyRated
	}
	it.rating = r
	it.mu.Unlock()

	it.notifyUpdate()
	return nil
}

// Submit posts the selected rating. The value sent is the selection at the
// moment of the call.
func (it *Item) Submit() error {
	it.mu.Lock()
	if err := it.submitCheckLocked(); err != nil {
		it.mu.Unlock()
		return err
	}
	it.submitGen++
	gen, id, rating := it.submitGen, it.id, it.rating
	it.submission = model.Loading[string]{}
	it.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"art_id": id,
		"rating": int(rating),
	}).Info("Submitting rating")
	it.notifyUpdate()
	it.deps.Launch(func() { it.submit(id, rating, gen) })
	return nil
}

// Remove detaches the item: pending completions are dropped and its context
// is canceled.
func (it *Item) Remove() {
	it.mu.Lock()
	it.removed = true
	it.fetchGen++
	it.submitGen++
	it.mu.Unlock()
	it.cancel()
}

func (it *Item) submitCheckLocked() error {
	switch {
	case it.removed:
		return context.Canceled
	case model.StatusOf[*model.Artwork](it.artwork) != model.FetchStatusSuccess:
		return ErrNotLoaded
	case !it.rating.Valid():
		return ErrNoRating
	case model.StatusOf[string](it.submission) == model.FetchStatusLoading:
		return ErrSubmissionInFlight
	case model.StatusOf[string](it.submission) == model.FetchStatusSuccess:
		return ErrAlreadyRated
	}
	return nil
}

func (it *Item) fetch(id int, gen uint64) {
	artwork, err := it.deps.Source.GetArtwork(it.ctx, id)
	if err == nil && artwork == nil {
		err = errors.New("empty artwork response")
	}

	log := logrus.WithField("art_id", id)

	it.mu.Lock()
	if gen != it.fetchGen || it.removed {
		it.mu.Unlock()
		log.Debug("Discarding stale artwork response")
		return
	}
	if err != nil {
		it.artwork = model.Failure[*model.Artwork]{Err: err}
	} else {
		it.artwork = model.Success[*model.Artwork]{Data: artwork}
	}
	it.mu.Unlock()

	if err != nil {
		log.WithError(err).Warn("Artwork failed to load")
	}
	it.notifyUpdate()
}

func (it *Item) submit(id int, rating model.Rating, gen uint64) {
	message, err := it.deps.Submitter.SubmitRating(it.ctx, id, rating)

	log := logrus.WithFields(logrus.Fields{
		"art_id": id,
		"rating": int(rating),
	})

	it.mu.Lock()
	if gen != it.submitGen || it.removed {
		it.mu.Unlock()
		log.Debug("Discarding stale rating response")
		return
	}
	if err != nil {
		it.submission = model.Failure[string]{Err: err}
	} else {
		it.submission = model.Success[string]{Data: message}
	}
	it.mu.Unlock()

	it.notifyUpdate()

	if err != nil {
		log.WithError(err).Warn("Rating submission failed")
		it.push(model.ToastError, DescribeError(err))
		return
	}
	it.push(model.ToastSuccess, message)
}

func (it *Item) push(kind model.ToastKind, description string) {
	if it.deps.Notifier != nil {
		it.deps.Notifier.Push(kind, description)
	}
}

// notifyUpdate calls the update callback if set
func (it *Item) notifyUpdate() {
	if it.onUpdate != nil {
		it.onUpdate(it)
	}
}

// DescribeError renders a submission error as toast text: validation messages
// joined by a space, otherwise the error text.
func DescribeError(err error) string {
	var validation *model.ValidationError
	if errors.As(err, &validation) {
		return strings.Join(validation.Messages, " ")
	}
	return err.Error()
}
