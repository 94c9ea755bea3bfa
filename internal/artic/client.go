package artic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/ytget/art-rater/internal/imaging"
	"github.com/ytget/art-rater/internal/model"
)

// Endpoint defaults
const (
	DefaultArtworkBaseURL = "https://api.artic.edu/api/v1/artworks"
	DefaultImageBaseURL   = "https://www.artic.edu/iiif/2"
	DefaultRatingURL      = "https://v0867.mocklab.io/rating"
	DefaultUserAgent      = "art-rater (https://github.com/ytget/art-rater)"

	// IIIF region/size/rotation/quality suffix for row images
	ImageSizeSuffix = "/full/843,/0/default.jpg"
)

// Client provides access to the artwork API and the rating endpoint.
type Client struct {
	httpClient     *http.Client
	artworkBaseURL string
	imageBaseURL   string
	ratingURL      string
	userAgent      string
}

// Option configures a Client.
type Option func(*Client)

// WithArtworkBaseURL sets the collection endpoint; the art ID is appended as a path segment.
func WithArtworkBaseURL(url string) Option {
	return func(c *Client) {
		c.artworkBaseURL = strings.TrimRight(url, "/")
	}
}

// WithImageBaseURL sets the IIIF image base.
func WithImageBaseURL(url string) Option {
	return func(c *Client) {
		c.imageBaseURL = strings.TrimRight(url, "/")
	}
}

// WithRatingURL sets the rating submission endpoint.
func WithRatingURL(url string) Option {
	return func(c *Client) {
		c.ratingURL = url
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the HTTP client timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent sets the identification header sent to the collection API.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:     &http.Client{},
		artworkBaseURL: DefaultArtworkBaseURL,
		imageBaseURL:   DefaultImageBaseURL,
		ratingURL:      DefaultRatingURL,
		userAgent:      DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ImageURL resolves an image_id to the IIIF URL used for display.
func (c *Client) ImageURL(imageID string) string {
	return c.imageBaseURL + "/" + imageID + ImageSizeSuffix
}

// GetArtwork retrieves display metadata for one artwork. A structured error
// payload is returned as *model.APIError; anything else that goes wrong is a
// plain wrapped error.
func (c *Client) GetArtwork(ctx context.Context, id int) (*model.Artwork, error) {
	url := fmt.Sprintf("%s/%d", c.artworkBaseURL, id)
	log := logrus.WithField("art_id", id)

	body, status, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch artwork %d: %w", id, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decode artwork %d: invalid JSON (status %d)", id, status)
	}

	if gjson.GetBytes(body, "error").Exists() {
		apiErr := &model.APIError{
			Status: int(gjson.GetBytes(body, "status").Int()),
			Label:  gjson.GetBytes(body, "error").String(),
			Detail: gjson.GetBytes(body, "detail").String(),
		}
		log.WithFields(logrus.Fields{
			"status": apiErr.Status,
			"error":  apiErr.Label,
		}).Warn("Artwork API returned an error payload")
		return nil, apiErr
	}

	data := gjson.GetBytes(body, "data")
	if !data.IsObject() {
		return nil, fmt.Errorf("decode artwork %d: response has no data object", id)
	}

	var artwork model.Artwork
	if err := json.Unmarshal([]byte(data.Raw), &artwork); err != nil {
		return nil, fmt.Errorf("decode artwork %d: %w", id, err)
	}

	log.WithField("title", artwork.Title).Debug("Artwork loaded")
	return &artwork, nil
}

// LoadImage downloads the IIIF image for imageID and returns it as a JPEG
// thumbnail sized for a list row.
func (c *Client) LoadImage(ctx context.Context, imageID string) ([]byte, error) {
	url := c.ImageURL(imageID)

	body, status, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", imageID, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fetch image %s: unexpected status %d", imageID, status)
	}

	thumb, err := imaging.Thumbnail(body, imaging.ThumbnailDimension)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", imageID, err)
	}
	return thumb, nil
}

// SubmitRating posts a rating and returns the server message. Validation
// failures come back as *model.ValidationError, unexpected payloads as
// *model.UnhandledResponseError.
func (c *Client) SubmitRating(ctx context.Context, id int, rating model.Rating) (string, error) {
	payload, err := json.Marshal(model.RatingRequest{ID: id, Rating: rating})
	if err != nil {
		return "", fmt.Errorf("encode rating: %w", err)
	}

	log := logrus.WithFields(logrus.Fields{
		"art_id": id,
		"rating": int(rating),
	})

	body, status, err := c.do(ctx, http.MethodPost, c.ratingURL, payload)
	if err != nil {
		return "", fmt.Errorf("submit rating for %d: %w", id, err)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("decode rating response: invalid JSON (status %d)", status)
	}

	result := gjson.ParseBytes(body)
	if msg := result.Get("message"); msg.Exists() {
		log.Info("Rating accepted")
		return msg.String(), nil
	}

	if errs := result.Get("errors"); errs.Exists() {
		var messages []string
		if errs.IsArray() {
			for _, e := range errs.Array() {
				messages = append(messages, e.String())
			}
		} else {
			messages = append(messages, errs.String())
		}
		log.WithField("errors", messages).Warn("Rating rejected")
		return "", &model.ValidationError{Messages: messages}
	}

	log.WithField("status", status).Warn("Unhandled rating response")
	return "", &model.UnhandledResponseError{Body: strings.TrimSpace(string(body))}
}

// do performs the request and returns the raw body with the status code.
func (c *Client) do(ctx context.Context, method, url string, payload []byte) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("AIC-User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}
