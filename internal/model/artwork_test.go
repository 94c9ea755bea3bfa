package model

import (
	"errors"
	"testing"
)

func TestParseArtID(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"27992", 27992, false},
		{"  42 ", 42, false},
		{"", 0, true},
		{"abc", 0, true},
		{"12.5", 0, true},
		{"0", 0, true},
		{"-7", 0, true},
	}

	for _, test := range tests {
		id, err := ParseArtID(test.input)
		if test.wantErr {
			if !errors.Is(err, ErrInvalidArtID) {
				t.Errorf("ParseArtID(%q) error = %v, expected ErrInvalidArtID", test.input, err)
			}
			continue
		}
		if err != nil || id != test.expected {
			t.Errorf("ParseArtID(%q) = %d, %v; expected %d", test.input, id, err, test.expected)
		}
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		err      *APIError
		expected string
	}{
		{&APIError{Status: 404, Label: "Not found", Detail: "The item you requested cannot be found."}, "The item you requested cannot be found."},
		{&APIError{Status: 403, Label: "Forbidden"}, "Forbidden"},
		{&APIError{Status: 500}, "artwork API error (status 500)"},
	}

	for _, test := range tests {
		if got := test.err.Error(); got != test.expected {
			t.Errorf("APIError.Error() = %q, expected %q", got, test.expected)
		}
	}
}

func TestArtwork_Display(t *testing.T) {
	var missing *Artwork
	if missing.HasImage() {
		t.Error("nil artwork should not have an image")
	}
	if missing.GetDisplayArtist() != "—" {
		t.Errorf("nil artwork artist = %q, expected dash", missing.GetDisplayArtist())
	}

	art := &Artwork{Title: "A Sunday on La Grande Jatte", ArtistTitle: "Georges Seurat", ImageID: "2d484387"}
	if !art.HasImage() {
		t.Error("artwork with image id should have an image")
	}
	if art.GetDisplayArtist() != "Georges Seurat" {
		t.Errorf("GetDisplayArtist() = %q", art.GetDisplayArtist())
	}
}
