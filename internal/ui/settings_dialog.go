package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/art-rater/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	toastDurationEntry *widget.Entry
	artworkURLEntry    *widget.Entry
	imageURLEntry      *widget.Entry
	ratingURLEntry     *widget.Entry
	languageSelect     *widget.Select
	logLevelSelect     *widget.Select
}

// ShowSettingsDialog builds and shows the dialog; onSaved runs after a confirmed save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.toastDurationEntry = widget.NewEntry()
	sd.toastDurationEntry.SetPlaceHolder("1-60")
	sd.toastDurationEntry.Validator = validateSeconds

	sd.artworkURLEntry = widget.NewEntry()
	sd.imageURLEntry = widget.NewEntry()
	sd.ratingURLEntry = widget.NewEntry()

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	levels := make([]string, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		levels = append(levels, level.String())
	}
	sd.logLevelSelect = widget.NewSelect(levels, nil)

	notice := widget.NewLabel(l.GetText(KeyRestartNotice))
	notice.Importance = widget.LowImportance

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyToastDuration)+":"),
		sd.toastDurationEntry,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyArtworkEndpoint)+":"),
		sd.artworkURLEntry,
		widget.NewLabel(l.GetText(KeyImageEndpoint)+":"),
		sd.imageURLEntry,
		widget.NewLabel(l.GetText(KeyRatingEndpoint)+":"),
		sd.ratingURLEntry,
		notice,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
		widget.NewLabel(l.GetText(KeyLogLevel)+":"),
		sd.logLevelSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	seconds := int(sd.settings.GetToastDuration() / time.Second)
	sd.toastDurationEntry.SetText(strconv.Itoa(seconds))
	sd.artworkURLEntry.SetText(sd.settings.GetArtworkAPIURL())
	sd.imageURLEntry.SetText(sd.settings.GetImageBaseURL())
	sd.ratingURLEntry.SetText(sd.settings.GetRatingURL())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel().String())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save writes the form into settings
func (sd *SettingsDialog) save() {
	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.toastDurationEntry.Text)); err == nil {
		sd.settings.SetToastDuration(time.Duration(seconds) * time.Second)
	}

	sd.settings.SetArtworkAPIURL(sd.artworkURLEntry.Text)
	sd.settings.SetImageBaseURL(sd.imageURLEntry.Text)
	sd.settings.SetRatingURL(sd.ratingURLEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}
}

func validateSeconds(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	_, err := strconv.Atoi(text)
	return err
}
