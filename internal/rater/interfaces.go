package rater

import (
	"context"

	"github.com/ytget/art-rater/internal/model"
)

// ArtworkSource reads artwork metadata by identifier.
type ArtworkSource interface {
	GetArtwork(ctx context.Context, id int) (*model.Artwork, error)
}

// RatingSubmitter writes a rating and returns the server message.
type RatingSubmitter interface {
	SubmitRating(ctx context.Context, id int, rating model.Rating) (string, error)
}

// Notifier receives one toast per submission outcome.
type Notifier interface {
	Push(kind model.ToastKind, description string) string
}

// Launcher starts asynchronous work. The default runs f on a new goroutine.
type Launcher func(f func())

// Dependencies are shared by every item of a Service.
type Dependencies struct {
	Source    ArtworkSource
	Submitter RatingSubmitter
	Notifier  Notifier
	Launch    Launcher
}

func goLauncher(f func()) {
	go f()
}
