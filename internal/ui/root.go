package ui

import (
	"errors"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/art-rater/internal/config"
	"github.com/ytget/art-rater/internal/model"
	"github.com/ytget/art-rater/internal/rater"
	"github.com/ytget/art-rater/internal/toast"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	raterSvc     *rater.Service
	toasts       *toast.Service
	images       ImageLoader
	settings     *config.Settings
	localization *Localization

	headingLabel *widget.Label
	idEntry      *widget.Entry
	addBtn       *widget.Button
	fieldError   *widget.Label
	list         *fyne.Container
	viewport     *ToastViewport

	// rows keyed by item, touched only on the UI goroutine
	rows map[*rater.Item]*ArtRow

	// starts image fetches; replaced in tests
	launch func(func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, raterSvc *rater.Service, toasts *toast.Service, images ImageLoader) *RootUI {
	return newRootUI(window, settings, raterSvc, toasts, images, func(f func()) { go f() })
}

func newRootUI(window fyne.Window, settings *config.Settings, raterSvc *rater.Service, toasts *toast.Service, images ImageLoader, launch func(func())) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		raterSvc:     raterSvc,
		toasts:       toasts,
		images:       images,
		settings:     settings,
		localization: localization,
		rows:         make(map[*rater.Item]*ArtRow),
		launch:       launch,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Item transitions arrive from request goroutines
	raterSvc.SetUpdateCallback(ui.onItemUpdate)

	ui.setupUI()
	logrus.Debug("UI setup completed")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.headingLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyHeading), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.headingLabel.SizeName = theme.SizeNameHeadingText

	// Create Art ID entry
	ui.idEntry = widget.NewEntry()
	ui.idEntry.SetPlaceHolder(ui.localization.GetText(KeyArtID))
	// Add when user presses Enter in the ID field
	ui.idEntry.OnSubmitted = func(string) {
		ui.onAddClick()
	}
	ui.idEntry.OnChanged = func(string) {
		ui.fieldError.Hide()
	}

	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddArt), ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.fieldError = widget.NewLabel("")
	ui.fieldError.Importance = widget.DangerImportance
	ui.fieldError.Hide()

	// Create logo
	var left fyne.CanvasObject = settingsBtn
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}

	entryRow := container.NewBorder(nil, nil, left, ui.addBtn, ui.idEntry)
	topPanel := container.NewVBox(ui.headingLabel, entryRow, ui.fieldError)

	ui.list = container.NewVBox()
	body := container.NewBorder(topPanel, nil, nil, nil, container.NewVScroll(ui.list))

	ui.viewport = NewToastViewport(ui.toasts)

	ui.window.SetContent(container.NewStack(body, ui.viewport))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.headingLabel.SetText(ui.localization.GetText(KeyHeading))
	ui.idEntry.SetPlaceHolder(ui.localization.GetText(KeyArtID))
	ui.addBtn.SetText(ui.localization.GetText(KeyAddArt))
	ui.fieldError.Hide()

	for _, row := range ui.rows {
		row.RefreshTexts()
	}
}

// AddArtworks lists every id, skipping invalid and repeated ones
func (ui *RootUI) AddArtworks(ids []int) {
	for _, id := range ids {
		if err := ui.addArtwork(id); err != nil {
			logrus.WithField("art_id", id).WithError(err).Warn("Skipping artwork")
		}
	}
}

func (ui *RootUI) addArtwork(id int) error {
	item, err := ui.raterSvc.AddItem(id)
	if err != nil {
		return err
	}

	row := newArtRow(item, ui.images, ui.localization, ui.launch)
	row.SetOnRemove(ui.onRemoveArt)
	ui.rows[item] = row
	ui.list.Add(row)
	return nil
}

// onAddClick handles the "Add Art" button and Enter in the ID field
func (ui *RootUI) onAddClick() {
	id, err := model.ParseArtID(ui.idEntry.Text)
	if err != nil {
		ui.showFieldError(KeyInvalidArtID)
		return
	}

	if err := ui.addArtwork(id); err != nil {
		switch {
		case errors.Is(err, rater.ErrDuplicateItem):
			ui.showFieldError(KeyAlreadyListed)
		default:
			ui.showFieldError(KeyInvalidArtID)
		}
		logrus.WithField("art_id", id).WithError(err).Debug("Artwork not added")
		return
	}

	ui.idEntry.SetText("")
	ui.fieldError.Hide()
}

func (ui *RootUI) showFieldError(key string) {
	ui.fieldError.SetText(ui.localization.GetText(key))
	ui.fieldError.Show()
}

// onRemoveArt handles the "Remove Art" button of a row
func (ui *RootUI) onRemoveArt(id int) {
	item, ok := ui.raterSvc.GetItem(id)
	if !ok {
		return
	}
	if err := ui.raterSvc.RemoveItem(id); err != nil {
		logrus.WithField("art_id", id).WithError(err).Warn("Error removing artwork")
		return
	}

	if row, exists := ui.rows[item]; exists {
		row.Release()
		ui.list.Remove(row)
		delete(ui.rows, item)
	}
}

// onItemUpdate handles item transitions from the rater service
func (ui *RootUI) onItemUpdate(item *rater.Item) {
	fyne.Do(func() {
		// rows are created right after AddItem returns; they sync themselves then
		if row, ok := ui.rows[item]; ok {
			row.Sync()
		}
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

func (ui *RootUI) onSettingsSaved() {
	ui.toasts.SetDuration(ui.settings.GetToastDuration())
	logrus.SetLevel(ui.settings.GetLogLevel())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// Rows returns the artwork rows in display order
func (ui *RootUI) Rows() []*ArtRow {
	rows := make([]*ArtRow, 0, len(ui.list.Objects))
	for _, obj := range ui.list.Objects {
		if row, ok := obj.(*ArtRow); ok {
			rows = append(rows, row)
		}
	}
	return rows
}
