package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/ytget/art-rater/internal/artic"
	"github.com/ytget/art-rater/internal/config"
	"github.com/ytget/art-rater/internal/rater"
	"github.com/ytget/art-rater/internal/toast"
	"github.com/ytget/art-rater/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.art-rater"
	AppName = "Art Rater"

	WindowWidth  = 720
	WindowHeight = 820
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	// Initialize settings, seeded from the optional YAML file
	settings := config.NewSettings(myApp)
	if err := config.Seed(settings); err != nil {
		logrus.WithError(err).Warn("Ignoring config file")
	}
	logrus.SetLevel(settings.GetLogLevel())
	logrus.WithField("version", version).Infof("%s starting", AppName)

	client := artic.NewClient(
		artic.WithArtworkBaseURL(settings.GetArtworkAPIURL()),
		artic.WithImageBaseURL(settings.GetImageBaseURL()),
		artic.WithRatingURL(settings.GetRatingURL()),
		artic.WithUserAgent(fmt.Sprintf("art-rater/%s", version)),
	)

	toasts := toast.NewService(toast.WithDuration(settings.GetToastDuration()))
	defer toasts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	raterSvc := rater.NewService(client, client, toasts, rater.WithContext(ctx))

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Create and setup UI
	root := ui.NewRootUI(myWindow, settings, raterSvc, toasts, client)
	root.AddArtworks(settings.GetArtIDs())

	// Show and run
	myWindow.ShowAndRun()
}
