package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconError    = "❌"
	IconSuccess  = "✓"
)

// Layout sizing (ArtRow thumbnail)
const (
	ThumbnailWidth  float32 = 240
	ThumbnailHeight float32 = 180
)

// Toast notification sizing
const (
	ToastWidth  float32 = 320
	ToastMargin float32 = 16
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 420
)

// Timeouts
const (
	ImageLoadTimeout = 30 * time.Second
)
