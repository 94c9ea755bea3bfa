package ui

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/art-rater/internal/config"
	"github.com/ytget/art-rater/internal/model"
	"github.com/ytget/art-rater/internal/rater"
	"github.com/ytget/art-rater/internal/toast"
)

func syncLaunch(f func()) { f() }

// queueLauncher holds started work until run is called
type queueLauncher struct {
	queue []func()
}

func (q *queueLauncher) launch(f func()) {
	q.queue = append(q.queue, f)
}

func (q *queueLauncher) run() {
	for len(q.queue) > 0 {
		f := q.queue[0]
		q.queue = q.queue[1:]
		f()
	}
}

type stubSource struct {
	artworks map[int]*model.Artwork
}

func newStubSource() *stubSource {
	return &stubSource{artworks: map[int]*model.Artwork{
		27992: {Title: "A Sunday on La Grande Jatte — 1884", ArtistTitle: "Georges Seurat", ImageID: "2d484387"},
		27998: {Title: "The Bedroom", ArtistTitle: "Vincent van Gogh", ImageID: "25c31d8d"},
		27999: {Title: "Untitled", ArtistTitle: ""},
		11111: {Title: " \n ", ArtistTitle: "Anonymous"},
	}}
}

func (s *stubSource) GetArtwork(_ context.Context, id int) (*model.Artwork, error) {
	if art, ok := s.artworks[id]; ok {
		return art, nil
	}
	return nil, &model.APIError{Status: 404, Label: "Not found", Detail: "The item you requested cannot be found."}
}

type stubSubmitter struct {
	results []error
	calls   []model.Rating
}

func (s *stubSubmitter) SubmitRating(_ context.Context, _ int, rating model.Rating) (string, error) {
	s.calls = append(s.calls, rating)
	if len(s.results) > 0 {
		err := s.results[0]
		s.results = s.results[1:]
		if err != nil {
			return "", err
		}
	}
	return "Successfully rated", nil
}

type stubImages struct {
	data []byte
	err  error
	ids  []string
}

func (s *stubImages) LoadImage(_ context.Context, imageID string) ([]byte, error) {
	s.ids = append(s.ids, imageID)
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

var errImage = errors.New("image unavailable")

type uiFixture struct {
	app       fyne.App
	window    fyne.Window
	settings  *config.Settings
	toasts    *toast.Service
	source    *stubSource
	submitter *stubSubmitter
	svc       *rater.Service
	launcher  *queueLauncher
}

func newUIFixture(t *testing.T) *uiFixture {
	t.Helper()
	f := &uiFixture{
		app:       test.NewTempApp(t),
		source:    newStubSource(),
		submitter: &stubSubmitter{},
		launcher:  &queueLauncher{},
	}
	f.window = test.NewWindow(nil)
	t.Cleanup(f.window.Close)
	f.settings = config.NewSettings(f.app)
	f.toasts = toast.NewService()
	t.Cleanup(f.toasts.Close)
	f.svc = rater.NewService(f.source, f.submitter, f.toasts, rater.WithLauncher(f.launcher.launch))
	return f
}

func (f *uiFixture) root(images ImageLoader) *RootUI {
	return newRootUI(f.window, f.settings, f.svc, f.toasts, images, syncLaunch)
}

func (f *uiFixture) rowFor(t *testing.T, ui *RootUI, id int) *ArtRow {
	t.Helper()
	for _, row := range ui.Rows() {
		if row.Item().ID() == id {
			return row
		}
	}
	t.Fatalf("no row for art ID %d", id)
	return nil
}
