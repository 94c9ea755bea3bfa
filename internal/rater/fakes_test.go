package rater

import (
	"context"
	"sync"

	"github.com/ytget/art-rater/internal/model"
)

func syncLaunch(f func()) { f() }

type fakeSource struct {
	mu       sync.Mutex
	artworks map[int]*model.Artwork
	errs     map[int]error
	gates    map[int]chan struct{}
	calls    []int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		artworks: map[int]*model.Artwork{
			27992: {Title: "A Sunday on La Grande Jatte — 1884", ArtistTitle: "Georges Seurat", ImageID: "2d484387"},
			27998: {Title: "The Bedroom", ArtistTitle: "Vincent van Gogh", ImageID: "25c31d8d"},
		},
		errs:  make(map[int]error),
		gates: make(map[int]chan struct{}),
	}
}

func (f *fakeSource) block(id int) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	gate := make(chan struct{})
	f.gates[id] = gate
	return gate
}

func (f *fakeSource) GetArtwork(ctx context.Context, id int) (*model.Artwork, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	gate := f.gates[id]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[id]; err != nil {
		return nil, err
	}
	if art, ok := f.artworks[id]; ok {
		return art, nil
	}
	return nil, &model.APIError{Status: 404, Label: "Not found", Detail: "The item you requested cannot be found."}
}

func (f *fakeSource) Calls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.calls...)
}

type submission struct {
	ID     int
	Rating model.Rating
}

type fakeSubmitter struct {
	mu      sync.Mutex
	calls   []submission
	results []error
	message string
	gate    chan struct{}
}

func (f *fakeSubmitter) SubmitRating(ctx context.Context, id int, rating model.Rating) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, submission{ID: id, Rating: rating})
	gate := f.gate
	var err error
	if len(f.results) > 0 {
		err = f.results[0]
		f.results = f.results[1:]
	}
	message := f.message
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return "", err
	}
	if message == "" {
		message = "Successfully rated"
	}
	return message, nil
}

func (f *fakeSubmitter) Calls() []submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]submission(nil), f.calls...)
}

type pushed struct {
	Kind        model.ToastKind
	Description string
}

type fakeNotifier struct {
	mu     sync.Mutex
	pushed []pushed
}

func (f *fakeNotifier) Push(kind model.ToastKind, description string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushed = append(f.pushed, pushed{Kind: kind, Description: description})
	return "toast"
}

func (f *fakeNotifier) Pushed() []pushed {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pushed(nil), f.pushed...)
}
