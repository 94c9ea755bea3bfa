package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/art-rater/internal/model"
	"github.com/ytget/art-rater/internal/rater"
)

// ImageLoader fetches a display-ready image for an artwork
type ImageLoader interface {
	LoadImage(ctx context.Context, imageID string) ([]byte, error)
}

// ArtRow renders one artwork item: its fetch state, rating toggle and submit button
type ArtRow struct {
	widget.BaseWidget

	item         *rater.Item
	images       ImageLoader
	localization *Localization
	launch       func(func())

	// UI components
	loadingLabel *widget.Label
	errorItem    *widget.AccordionItem
	errorDetails *widget.Accordion
	detailLabel  *widget.Label
	titleLabel   *widget.Label
	artistLabel  *widget.Label
	image        *canvas.Image
	imageNote    *widget.Label
	ratingLabel  *widget.Label
	ratingGroup  *widget.RadioGroup
	submitBtn    *widget.Button
	ratedLabel   *widget.Label
	removeBtn    *widget.Button

	loadingBox *fyne.Container
	errorBox   *fyne.Container
	detailsBox *fyne.Container
	content    *fyne.Container

	// image currently shown or being fetched
	imageID     string
	imageCancel context.CancelFunc

	// set while Sync writes the radio group so OnChanged is ignored
	syncing bool

	onRemove func(id int)
}

// newArtRow creates a row bound to item; launch starts image fetches
func newArtRow(item *rater.Item, images ImageLoader, localization *Localization, launch func(func())) *ArtRow {
	ar := &ArtRow{
		item:         item,
		images:       images,
		localization: localization,
		launch:       launch,
	}
	ar.ExtendBaseWidget(ar)
	ar.createUI()
	ar.Sync()
	return ar
}

// SetOnRemove sets the callback for the "Remove Art" button
func (ar *ArtRow) SetOnRemove(onRemove func(id int)) {
	ar.onRemove = onRemove
}

// Item returns the bound item
func (ar *ArtRow) Item() *rater.Item {
	return ar.item
}

// CreateRenderer implements fyne.Widget
func (ar *ArtRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ar.content)
}

// createUI creates the UI components
func (ar *ArtRow) createUI() {
	l := ar.localization

	ar.loadingLabel = widget.NewLabel(l.GetText(KeyLoadingArtwork))
	ar.loadingLabel.Importance = widget.LowImportance
	ar.loadingBox = container.NewVBox(ar.loadingLabel)

	ar.detailLabel = widget.NewLabel("")
	ar.detailLabel.Wrapping = fyne.TextWrapWord
	ar.errorItem = widget.NewAccordionItem("", ar.detailLabel)
	ar.errorDetails = widget.NewAccordion(ar.errorItem)

	ar.titleLabel = widget.NewLabel("")
	ar.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ar.titleLabel.Wrapping = fyne.TextWrapWord

	ar.artistLabel = widget.NewLabel("")
	ar.artistLabel.Wrapping = fyne.TextWrapWord

	ar.image = canvas.NewImageFromResource(nil)
	ar.image.FillMode = canvas.ImageFillContain
	ar.image.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	ar.image.Hide()

	ar.imageNote = widget.NewLabel(l.GetText(KeyNoImage))
	ar.imageNote.Importance = widget.LowImportance
	ar.imageNote.Hide()

	ar.ratingLabel = widget.NewLabel("")

	ar.ratingGroup = widget.NewRadioGroup(model.RatingOptions(), ar.onRatingChanged)
	ar.ratingGroup.Horizontal = true
	ar.ratingGroup.Required = true

	ar.submitBtn = widget.NewButton(l.GetText(KeySubmit), ar.onSubmit)
	ar.submitBtn.Importance = widget.HighImportance

	ar.ratedLabel = widget.NewLabel("")
	ar.ratedLabel.Importance = widget.SuccessImportance

	ar.removeBtn = widget.NewButton(l.GetText(KeyRemoveArt), func() {
		if ar.onRemove != nil {
			ar.onRemove(ar.item.ID())
		}
	})
	ar.removeBtn.Importance = widget.DangerImportance

	ar.errorBox = container.NewVBox(ar.errorDetails)
	ar.detailsBox = container.NewVBox(
		ar.titleLabel,
		ar.artistLabel,
		container.NewHBox(ar.image),
		ar.imageNote,
		ar.ratingLabel,
		ar.ratingGroup,
		container.NewHBox(ar.submitBtn, ar.ratedLabel),
	)

	ar.content = container.NewVBox(
		ar.loadingBox,
		ar.errorBox,
		ar.detailsBox,
		container.NewHBox(ar.removeBtn),
		widget.NewSeparator(),
	)
}

// Sync redraws the row from the item's current snapshot. Must run on the UI goroutine.
func (ar *ArtRow) Sync() {
	snap := ar.item.Snapshot()

	loading := func() *fyne.Container { return ar.loadingBox }
	visible := model.Match(snap.Artwork,
		loading,
		loading,
		func(artwork *model.Artwork) *fyne.Container {
			ar.fillArtwork(snap, artwork)
			return ar.detailsBox
		},
		func(err error) *fyne.Container {
			ar.fillError(snap.ID, err)
			return ar.errorBox
		},
	)

	for _, section := range []*fyne.Container{ar.loadingBox, ar.errorBox, ar.detailsBox} {
		if section == visible {
			section.Show()
		} else {
			section.Hide()
		}
	}
	// no actions until the fetch settles
	if visible == ar.loadingBox {
		ar.removeBtn.Hide()
	} else {
		ar.removeBtn.Show()
	}
	ar.Refresh()
}

func (ar *ArtRow) fillError(id int, err error) {
	ar.errorItem.Title = fmt.Sprintf(ar.localization.GetText(KeyLoadError), id)
	ar.detailLabel.SetText(err.Error())
	ar.errorDetails.Refresh()
}

func (ar *ArtRow) fillArtwork(snap rater.Snapshot, artwork *model.Artwork) {
	l := ar.localization

	title := cleanText(artwork.Title)
	if title == "" {
		title = model.DashPlaceholder
	}
	ar.titleLabel.SetText(title)
	ar.artistLabel.SetText(cleanText(artwork.GetDisplayArtist()))
	ar.ratingLabel.SetText(fmt.Sprintf(l.GetText(KeyRatingFormat), snap.Rating.String()))
	ar.syncImage(artwork)

	ar.syncing = true
	ar.ratingGroup.SetSelected(snap.Rating.String())
	ar.syncing = false

	switch model.StatusOf[string](snap.Submission) {
	case model.FetchStatusSuccess:
		ar.ratingGroup.Hide()
		ar.submitBtn.Hide()
		ar.ratedLabel.SetText(IconSuccess + " " + l.GetText(KeyRated))
		ar.ratedLabel.Show()
	case model.FetchStatusLoading:
		ar.ratingGroup.Show()
		ar.ratingGroup.Disable()
		ar.submitBtn.Show()
		ar.submitBtn.SetText(l.GetText(KeySubmitting))
		ar.submitBtn.Disable()
		ar.ratedLabel.Hide()
	default:
		ar.ratingGroup.Show()
		ar.ratingGroup.Enable()
		ar.submitBtn.Show()
		ar.submitBtn.SetText(l.GetText(KeySubmit))
		if snap.CanSubmit {
			ar.submitBtn.Enable()
		} else {
			ar.submitBtn.Disable()
		}
		ar.ratedLabel.Hide()
	}
}

// syncImage starts a thumbnail fetch when the artwork's image changes
func (ar *ArtRow) syncImage(artwork *model.Artwork) {
	if !artwork.HasImage() || ar.images == nil {
		ar.cancelImage()
		ar.imageID = ""
		ar.image.Resource = nil
		ar.image.Hide()
		ar.imageNote.Show()
		return
	}
	ar.imageNote.Hide()
	if artwork.ImageID == ar.imageID {
		return
	}

	ar.cancelImage()
	imageID := artwork.ImageID
	ar.imageID = imageID
	ar.image.Resource = nil
	ar.image.Hide()

	ctx, cancel := context.WithTimeout(context.Background(), ImageLoadTimeout)
	ar.imageCancel = cancel
	ar.launch(func() {
		defer cancel()
		data, err := ar.images.LoadImage(ctx, imageID)
		fyne.Do(func() { ar.applyImage(imageID, data, err) })
	})
}

func (ar *ArtRow) applyImage(imageID string, data []byte, err error) {
	if imageID != ar.imageID {
		return
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"art_id":   ar.item.ID(),
			"image_id": imageID,
		}).WithError(err).Warn("Image failed to load")
		ar.imageNote.Show()
		return
	}
	ar.image.Resource = fyne.NewStaticResource(imageID+".jpg", data)
	ar.image.Show()
	ar.image.Refresh()
}

func (ar *ArtRow) cancelImage() {
	if ar.imageCancel != nil {
		ar.imageCancel()
		ar.imageCancel = nil
	}
}

// Release stops any pending image fetch
func (ar *ArtRow) Release() {
	ar.cancelImage()
	ar.imageID = ""
}

// RefreshTexts re-applies localized strings
func (ar *ArtRow) RefreshTexts() {
	ar.loadingLabel.SetText(ar.localization.GetText(KeyLoadingArtwork))
	ar.imageNote.SetText(ar.localization.GetText(KeyNoImage))
	ar.removeBtn.SetText(ar.localization.GetText(KeyRemoveArt))
	ar.Sync()
}

func (ar *ArtRow) onRatingChanged(value string) {
	if ar.syncing || value == "" {
		return
	}
	rating, err := model.ParseRating(value)
	if err != nil {
		logrus.WithField("value", value).WithError(err).Warn("Ignoring rating option")
		return
	}
	if err := ar.item.SelectRating(rating); err != nil {
		logrus.WithField("art_id", ar.item.ID()).WithError(err).Debug("Rating selection refused")
		ar.Sync()
	}
}

func (ar *ArtRow) onSubmit() {
	if err := ar.item.Submit(); err != nil {
		logrus.WithField("art_id", ar.item.ID()).WithError(err).Debug("Submit refused")
		ar.Sync()
	}
}

// cleanText collapses control whitespace from API strings
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	return strings.TrimSpace(text)
}
