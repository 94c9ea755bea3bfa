package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyHeading         = "heading"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyArtID           = "art_id"
	KeyAddArt          = "add_art"
	KeyRemoveArt       = "remove_art"
	KeyInvalidArtID    = "invalid_art_id"
	KeyAlreadyListed   = "already_listed"
	KeyLoadingArtwork  = "loading_artwork"
	KeyLoadError       = "load_error"
	KeyRatingFormat    = "rating_format"
	KeySubmit          = "submit"
	KeySubmitting      = "submitting"
	KeyRated           = "rated"
	KeyNoImage         = "no_image"
	KeyToastDuration   = "toast_duration"
	KeyArtworkEndpoint = "artwork_endpoint"
	KeyImageEndpoint   = "image_endpoint"
	KeyRatingEndpoint  = "rating_endpoint"
	KeyLogLevel        = "log_level"
	KeyRestartNotice   = "restart_notice"
	KeySettingsSaved   = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns available language codes and names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Art Rater",
		KeyHeading:         "Art Rater",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyArtID:           "Art ID",
		KeyAddArt:          "Add Art",
		KeyRemoveArt:       "Remove Art",
		KeyInvalidArtID:    "Art ID must be a number.",
		KeyAlreadyListed:   "This artwork is already in the list.",
		KeyLoadingArtwork:  "Loading artwork...",
		KeyLoadError:       "An error occurred while loading Art ID: %d",
		KeyRatingFormat:    "Rating: %s",
		KeySubmit:          "Submit",
		KeySubmitting:      "Submitting...",
		KeyRated:           "Rated",
		KeyNoImage:         "No image available",
		KeyToastDuration:   "Notification duration (seconds)",
		KeyArtworkEndpoint: "Artwork API URL",
		KeyImageEndpoint:   "Image base URL",
		KeyRatingEndpoint:  "Rating URL",
		KeyLogLevel:        "Log level",
		KeyRestartNotice:   "Endpoint changes apply after restart.",
		KeySettingsSaved:   "Settings saved",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Оценка картин",
		KeyHeading:         "Оценка картин",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyArtID:           "ID картины",
		KeyAddArt:          "Добавить",
		KeyRemoveArt:       "Удалить",
		KeyInvalidArtID:    "ID картины должен быть числом.",
		KeyAlreadyListed:   "Эта картина уже в списке.",
		KeyLoadingArtwork:  "Загрузка картины...",
		KeyLoadError:       "Ошибка при загрузке картины с ID: %d",
		KeyRatingFormat:    "Оценка: %s",
		KeySubmit:          "Отправить",
		KeySubmitting:      "Отправка...",
		KeyRated:           "Оценено",
		KeyNoImage:         "Изображение недоступно",
		KeyToastDuration:   "Длительность уведомлений (секунды)",
		KeyArtworkEndpoint: "URL API картин",
		KeyImageEndpoint:   "Базовый URL изображений",
		KeyRatingEndpoint:  "URL оценок",
		KeyLogLevel:        "Уровень логирования",
		KeyRestartNotice:   "Изменения адресов применятся после перезапуска.",
		KeySettingsSaved:   "Настройки сохранены",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Avaliador de Arte",
		KeyHeading:         "Avaliador de Arte",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyArtID:           "ID da obra",
		KeyAddArt:          "Adicionar",
		KeyRemoveArt:       "Remover",
		KeyInvalidArtID:    "O ID da obra deve ser um número.",
		KeyAlreadyListed:   "Esta obra já está na lista.",
		KeyLoadingArtwork:  "Carregando obra...",
		KeyLoadError:       "Ocorreu um erro ao carregar a obra com ID: %d",
		KeyRatingFormat:    "Nota: %s",
		KeySubmit:          "Enviar",
		KeySubmitting:      "Enviando...",
		KeyRated:           "Avaliada",
		KeyNoImage:         "Imagem indisponível",
		KeyToastDuration:   "Duração das notificações (segundos)",
		KeyArtworkEndpoint: "URL da API de obras",
		KeyImageEndpoint:   "URL base das imagens",
		KeyRatingEndpoint:  "URL de avaliação",
		KeyLogLevel:        "Nível de log",
		KeyRestartNotice:   "Mudanças de endereço valem após reiniciar.",
		KeySettingsSaved:   "Configurações salvas",
	}
}
