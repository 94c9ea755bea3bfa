package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/art-rater/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "art-rater.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
toast_duration: 4s
artwork_api_url: http://localhost:9000/artworks
rating_url: http://localhost:9000/rating
language: ru
log_level: debug
art_ids: [27992, 27998]
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 4*time.Second, cfg.ToastDuration)
	assert.Equal(t, "http://localhost:9000/artworks", cfg.ArtworkAPIURL)
	assert.Equal(t, "http://localhost:9000/rating", cfg.RatingURL)
	assert.Empty(t, cfg.ImageBaseURL)
	assert.Equal(t, "ru", cfg.Language)
	assert.Equal(t, []int{27992, 27998}, cfg.ArtIDs)
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad yaml", content: "art_ids: [1, 2", wantErr: "parse config yaml"},
		{name: "bad log level", content: "log_level: loud", wantErr: "log_level"},
		{name: "negative id", content: "art_ids: [1, -4]", wantErr: "art_ids must be positive"},
		{name: "negative duration", content: "toast_duration: -1s", wantErr: "toast_duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFileApply(t *testing.T) {
	settings := NewSettings(test.NewApp())
	settings.SetRatingURL("http://keep.me/rating")

	cfg := &File{
		ToastDuration: 2 * time.Second,
		ImageBaseURL:  "http://localhost/iiif",
		LogLevel:      "warn",
		ArtIDs:        []int{1, 2, 3},
	}
	cfg.Apply(settings)

	assert.Equal(t, 2*time.Second, settings.GetToastDuration())
	assert.Equal(t, "http://localhost/iiif", settings.GetImageBaseURL())
	assert.Equal(t, "http://keep.me/rating", settings.GetRatingURL())
	assert.Equal(t, logrus.WarnLevel, settings.GetLogLevel())
	assert.Equal(t, []int{1, 2, 3}, settings.GetArtIDs())

	// nil file is a no-op
	var none *File
	assert.NotPanics(t, func() { none.Apply(settings) })
}

func TestFileApplyEmptyArtIDs(t *testing.T) {
	settings := NewSettings(test.NewApp())

	cfg, err := LoadFile(writeConfig(t, "language: en\n"))
	require.NoError(t, err)
	cfg.Apply(settings)
	assert.Equal(t, model.DefaultArtIDs, settings.GetArtIDs())

	cfg, err = LoadFile(writeConfig(t, "art_ids: []\n"))
	require.NoError(t, err)
	cfg.Apply(settings)
	assert.Empty(t, settings.GetArtIDs())
}

func TestSeed(t *testing.T) {
	path := writeConfig(t, "language: pt\n")
	t.Setenv(ConfigEnv, path)

	assert.Equal(t, path, GetConfigPath())

	settings := NewSettings(test.NewApp())
	require.NoError(t, Seed(settings))
	assert.Equal(t, "pt", settings.GetLanguage())
}

func TestGetConfigPathDefault(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	assert.Equal(t, DefaultConfigPath, GetConfigPath())
}
