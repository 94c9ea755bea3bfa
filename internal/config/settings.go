package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"

	"github.com/ytget/art-rater/internal/artic"
	"github.com/ytget/art-rater/internal/model"
	"github.com/ytget/art-rater/internal/toast"
)

// Settings keys for Fyne preferences
const (
	KeyToastDuration = "toast_duration_ms"
	KeyArtworkAPIURL = "artwork_api_url"
	KeyImageBaseURL  = "image_base_url"
	KeyRatingURL     = "rating_url"
	KeyLanguage      = "app_language"
	KeyLogLevel      = "log_level"
	KeyArtIDs        = "art_ids"
)

// Default values
const (
	DefaultToastDuration = toast.DefaultDuration
	DefaultLanguage      = "system"
	DefaultLogLevel      = "info"

	MinToastDuration = time.Second
	MaxToastDuration = time.Minute
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetToastDuration returns how long notifications stay on screen
func (s *Settings) GetToastDuration() time.Duration {
	ms := s.app.Preferences().Int(KeyToastDuration)
	if ms <= 0 {
		s.SetToastDuration(DefaultToastDuration)
		return DefaultToastDuration
	}
	return time.Duration(ms) * time.Millisecond
}

// SetToastDuration sets the notification duration, clamped to 1s..1m
func (s *Settings) SetToastDuration(d time.Duration) {
	if d < MinToastDuration {
		d = MinToastDuration
	}
	if d > MaxToastDuration {
		d = MaxToastDuration
	}
	s.app.Preferences().SetInt(KeyToastDuration, int(d/time.Millisecond))
}

// GetArtworkAPIURL returns the artwork metadata endpoint
func (s *Settings) GetArtworkAPIURL() string {
	return s.app.Preferences().StringWithFallback(KeyArtworkAPIURL, artic.DefaultArtworkBaseURL)
}

// SetArtworkAPIURL sets the artwork metadata endpoint; empty restores the default
func (s *Settings) SetArtworkAPIURL(url string) {
	s.setURL(KeyArtworkAPIURL, url, artic.DefaultArtworkBaseURL)
}

// GetImageBaseURL returns the IIIF image base
func (s *Settings) GetImageBaseURL() string {
	return s.app.Preferences().StringWithFallback(KeyImageBaseURL, artic.DefaultImageBaseURL)
}

// SetImageBaseURL sets the IIIF image base; empty restores the default
func (s *Settings) SetImageBaseURL(url string) {
	s.setURL(KeyImageBaseURL, url, artic.DefaultImageBaseURL)
}

// GetRatingURL returns the rating submission endpoint
func (s *Settings) GetRatingURL() string {
	return s.app.Preferences().StringWithFallback(KeyRatingURL, artic.DefaultRatingURL)
}

// SetRatingURL sets the rating submission endpoint; empty restores the default
func (s *Settings) SetRatingURL(url string) {
	s.setURL(KeyRatingURL, url, artic.DefaultRatingURL)
}

func (s *Settings) setURL(key, url, fallback string) {
	url = strings.TrimSpace(url)
	if url == "" {
		url = fallback
	}
	s.app.Preferences().SetString(key, url)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLogLevel returns the configured logrus level
func (s *Settings) GetLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// SetLogLevel stores a log level name. Unknown names are ignored.
func (s *Settings) SetLogLevel(name string) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		logrus.WithField("level", name).Warn("Ignoring unknown log level")
		return
	}
	s.app.Preferences().SetString(KeyLogLevel, level.String())
}

// GetArtIDs returns the art IDs listed on start. An explicitly stored empty
// list stays empty.
func (s *Settings) GetArtIDs() []int {
	ids := s.app.Preferences().IntListWithFallback(KeyArtIDs, model.DefaultArtIDs)
	return append([]int{}, ids...)
}

// SetArtIDs stores the configured start-up list, dropping non-positive and repeated IDs
func (s *Settings) SetArtIDs(ids []int) {
	seen := make(map[int]bool, len(ids))
	clean := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		clean = append(clean, id)
	}
	s.app.Preferences().SetIntList(KeyArtIDs, clean)
}
