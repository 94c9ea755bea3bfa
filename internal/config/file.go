package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable holding the seed file path
const ConfigEnv = "ART_RATER_CONFIG"

// DefaultConfigPath is used when ConfigEnv is unset
const DefaultConfigPath = "./art-rater.yaml"

// File is the optional YAML seed applied over preferences at start-up.
// Zero fields leave the stored preference untouched.
type File struct {
	ToastDuration time.Duration `yaml:"toast_duration"`
	ArtworkAPIURL string        `yaml:"artwork_api_url"`
	ImageBaseURL  string        `yaml:"image_base_url"`
	RatingURL     string        `yaml:"rating_url"`
	Language      string        `yaml:"language"`
	LogLevel      string        `yaml:"log_level"`
	ArtIDs        []int         `yaml:"art_ids"`
}

// GetConfigPath returns the seed file path from environment or default.
func GetConfigPath() string {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path
	}
	return DefaultConfigPath
}

// LoadFile reads a seed file. A missing file yields (nil, nil).
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &File{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (f *File) validate() error {
	if f.ToastDuration < 0 {
		return fmt.Errorf("toast_duration must not be negative, got %s", f.ToastDuration)
	}
	if f.LogLevel != "" {
		if _, err := logrus.ParseLevel(f.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	for _, id := range f.ArtIDs {
		if id <= 0 {
			return fmt.Errorf("art_ids must be positive, got %d", id)
		}
	}
	return nil
}

// Apply writes the non-zero fields into settings. A present but empty
// art_ids list is applied as empty.
func (f *File) Apply(s *Settings) {
	if f == nil {
		return
	}
	if f.ToastDuration > 0 {
		s.SetToastDuration(f.ToastDuration)
	}
	if f.ArtworkAPIURL != "" {
		s.SetArtworkAPIURL(f.ArtworkAPIURL)
	}
	if f.ImageBaseURL != "" {
		s.SetImageBaseURL(f.ImageBaseURL)
	}
	if f.RatingURL != "" {
		s.SetRatingURL(f.RatingURL)
	}
	if f.Language != "" {
		s.SetLanguage(f.Language)
	}
	if f.LogLevel != "" {
		s.SetLogLevel(f.LogLevel)
	}
	if f.ArtIDs != nil {
		s.SetArtIDs(f.ArtIDs)
	}
}

// Seed loads the file at GetConfigPath and applies it to settings
func Seed(s *Settings) error {
	path := GetConfigPath()
	cfg, err := LoadFile(path)
	if err != nil {
		return err
	}
	if cfg == nil {
		logrus.WithField("path", path).Debug("No config file, using preferences")
		return nil
	}
	cfg.Apply(s)
	logrus.WithField("path", path).Info("Applied config file")
	return nil
}
