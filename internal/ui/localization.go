package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyBannerTitle       = "banner_title"
	KeyBannerMessage     = "banner_message"
	KeyInstall           = "install"
	KeyMaybeLater        = "maybe_later"
	KeyManualInstall     = "manual_install"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyInstalledState    = "installed_state"
	KeyNotInstalledState = "not_installed_state"
	KeySnoozedUntil      = "snoozed_until"
	KeyNotSnoozed        = "not_snoozed"
	KeyResetSnooze       = "reset_snooze"
	KeyResetInstalled    = "reset_installed"
	KeyInstallDone       = "install_done"
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

// GetAvailableLanguages returns map of available languages with their display names
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
		KeyAppTitle:          "Install Prompt",
		KeyBannerTitle:       "Install this app",
		KeyBannerMessage:     "Add it to your applications for quick access. It works offline too.",
		KeyInstall:           "Install App",
		KeyMaybeLater:        "Maybe later",
		KeyManualInstall:     "How to install",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyInstalledState:    "Installed",
		KeyNotInstalledState: "Not installed",
		KeySnoozedUntil:      "Banner snoozed until",
		KeyNotSnoozed:        "Banner not snoozed",
		KeyResetSnooze:       "Forget the last dismissal",
		KeyResetInstalled:    "Forget the installed state",
		KeyInstallDone:       "App installed",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Установка приложения",
		KeyBannerTitle:       "Установите приложение",
		KeyBannerMessage:     "Добавьте его в список приложений для быстрого доступа. Работает и офлайн.",
		KeyInstall:           "Установить",
		KeyMaybeLater:        "Позже",
		KeyManualInstall:     "Как установить",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyInstalledState:    "Установлено",
		KeyNotInstalledState: "Не установлено",
		KeySnoozedUntil:      "Баннер скрыт до",
		KeyNotSnoozed:        "Баннер не скрыт",
		KeyResetSnooze:       "Забыть последний отказ",
		KeyResetInstalled:    "Забыть статус установки",
		KeyInstallDone:       "Приложение установлено",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Instalar Aplicativo",
		KeyBannerTitle:       "Instale este aplicativo",
		KeyBannerMessage:     "Adicione-o aos seus aplicativos para acesso rápido. Funciona offline.",
		KeyInstall:           "Instalar",
		KeyMaybeLater:        "Mais tarde",
		KeyManualInstall:     "Como instalar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyInstalledState:    "Instalado",
		KeyNotInstalledState: "Não instalado",
		KeySnoozedUntil:      "Aviso adiado até",
		KeyNotSnoozed:        "Aviso não adiado",
		KeyResetSnooze:       "Esquecer a última dispensa",
		KeyResetInstalled:    "Esquecer o estado de instalação",
		KeyInstallDone:       "Aplicativo instalado",
	}
}
