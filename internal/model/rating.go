package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Rating is a user score from MinRating to MaxRating. The zero value means
// no rating has been selected.
type Rating int

const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

// Valid reports whether r is inside the allowed range
func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

// String returns the numeric label of the rating, or "" when unset
func (r Rating) String() string {
	if !r.Valid() {
		return ""
	}
	return strconv.Itoa(int(r))
}

// ParseRating converts a toggle option label back into a rating
func ParseRating(option string) (Rating, error) {
	n, err := strconv.Atoi(strings.TrimSpace(option))
	if err != nil {
		return 0, fmt.Errorf("parse rating %q: %w", option, err)
	}
	r := Rating(n)
	if !r.Valid() {
		return 0, fmt.Errorf("rating %d out of range %d..%d", n, MinRating, MaxRating)
	}
	return r, nil
}

// RatingOptions returns the toggle labels "1".."5"
func RatingOptions() []string {
	options := make([]string, 0, int(MaxRating-MinRating)+1)
	for r := MinRating; r <= MaxRating; r++ {
		options = append(options, r.String())
	}
	return options
}

// RatingRequest is the JSON body posted to the rating endpoint
type RatingRequest struct {
	ID     int    `json:"id"`
	Rating Rating `json:"rating"`
}

// ValidationError carries the messages of a rejected submission
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

// UnhandledResponseError is returned when the rating endpoint answers with a
// payload that is neither a message nor a list of errors
type UnhandledResponseError struct {
	Body string
}

func (e *UnhandledResponseError) Error() string {
	return "unhandled error with data: " + e.Body
}
