package ui

import (
	"fyne.io/fyne/v2"
)

// AppIcon is looked up next to the binary; the header shows it when present
const AppIcon = "art-rater.png"

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
