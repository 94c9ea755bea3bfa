package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArtID is returned for identifiers that are not positive integers
var ErrInvalidArtID = errors.New("art ID must be a positive number")

// DefaultArtIDs is the list shown on first start
var DefaultArtIDs = []int{27992, 27998, 27999, 27997, 27993}

// Artwork holds the display metadata of one collection item
type Artwork struct {
	Title       string `json:"title"`
	ArtistTitle string `json:"artist_title"`
	ImageID     string `json:"image_id"`
}

// HasImage reports whether the artwork references an image
func (a *Artwork) HasImage() bool {
	return a != nil && strings.TrimSpace(a.ImageID) != ""
}

// DashPlaceholder stands in for metadata the API left empty
const DashPlaceholder = "—"

// GetDisplayArtist returns the artist label, or a dash when the API has none
func (a *Artwork) GetDisplayArtist() string {
	if a == nil || strings.TrimSpace(a.ArtistTitle) == "" {
		return DashPlaceholder
	}
	return a.ArtistTitle
}

// APIError is the structured error payload of the artwork API
type APIError struct {
	Status int    `json:"status"`
	Label  string `json:"error"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Label != "" {
		return e.Label
	}
	return fmt.Sprintf("artwork API error (status %d)", e.Status)
}

// ParseArtID converts user input into a positive art identifier
func ParseArtID(input string) (int, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return 0, ErrInvalidArtID
	}
	id, err := strconv.Atoi(text)
	if err != nil || id <= 0 {
		return 0, ErrInvalidArtID
	}
	return id, nil
}
