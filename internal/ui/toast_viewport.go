package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/art-rater/internal/model"
	"github.com/ytget/art-rater/internal/toast"
)

// ToastViewport stacks the active toasts in the bottom-right corner of the window
type ToastViewport struct {
	widget.BaseWidget

	toasts *toast.Service
	stack  *fyne.Container
	cards  map[string]*ToastCard
}

// NewToastViewport creates the viewport and subscribes it to the toast service
func NewToastViewport(toasts *toast.Service) *ToastViewport {
	tv := &ToastViewport{
		toasts: toasts,
		stack:  container.NewVBox(),
		cards:  make(map[string]*ToastCard),
	}
	tv.ExtendBaseWidget(tv)

	toasts.SetUpdateCallback(tv.onToastsChanged)
	tv.render(toasts.Active())
	return tv
}

// onToastsChanged redraws from the service's current set. Snapshots from
// concurrent changes can arrive out of order, so the argument is not drawn.
func (tv *ToastViewport) onToastsChanged([]model.ToastMessage) {
	fyne.Do(func() { tv.render(tv.toasts.Active()) })
}

// CreateRenderer implements fyne.Widget
func (tv *ToastViewport) CreateRenderer() fyne.WidgetRenderer {
	corner := container.NewBorder(
		nil,
		container.NewBorder(nil, toastMargin(), nil, nil, container.NewHBox(layout.NewSpacer(), tv.stack, toastMargin())),
		nil, nil,
	)
	return widget.NewSimpleRenderer(corner)
}

// toastMargin keeps cards off the window edge
func toastMargin() fyne.CanvasObject {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(fyne.NewSize(ToastMargin, ToastMargin))
	return r
}

// Cards returns the visible cards, oldest first
func (tv *ToastViewport) Cards() []*ToastCard {
	cards := make([]*ToastCard, 0, len(tv.stack.Objects))
	for _, obj := range tv.stack.Objects {
		if card, ok := obj.(*ToastCard); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// render replaces the stack with one card per active message, reusing existing cards
func (tv *ToastViewport) render(active []model.ToastMessage) {
	next := make(map[string]*ToastCard, len(active))
	objects := make([]fyne.CanvasObject, 0, len(active))
	for _, msg := range active {
		card, ok := tv.cards[msg.ID]
		if !ok {
			card = NewToastCard(msg, tv.dismiss)
		}
		next[msg.ID] = card
		objects = append(objects, card)
	}
	tv.cards = next
	tv.stack.Objects = objects
	tv.stack.Refresh()
	tv.Refresh()
}

func (tv *ToastViewport) dismiss(id string) {
	if !tv.toasts.Dismiss(id) {
		logrus.WithField("toast_id", id).Debug("Toast already gone")
	}
}

// ToastCard is one notification. It closes on its × button or when swiped right.
type ToastCard struct {
	widget.BaseWidget

	message   model.ToastMessage
	onDismiss func(id string)
	swipe     *SwipeTracker

	background *canvas.Rectangle
	label      *widget.Label
	closeBtn   *widget.Button
}

// NewToastCard creates a card for msg
func NewToastCard(msg model.ToastMessage, onDismiss func(id string)) *ToastCard {
	tc := &ToastCard{
		message:   msg,
		onDismiss: onDismiss,
		swipe:     NewSwipeTracker(DefaultSwipeThreshold),
	}
	tc.ExtendBaseWidget(tc)

	colorName := ColorNameToastSuccess
	icon := IconSuccess
	if msg.Kind == model.ToastError {
		colorName = ColorNameToastError
		icon = IconError
	}
	tc.background = canvas.NewRectangle(theme.Color(colorName))
	tc.background.CornerRadius = theme.InputRadiusSize()

	tc.label = widget.NewLabel(icon + " " + msg.Description)
	tc.label.Wrapping = fyne.TextWrapWord

	tc.closeBtn = widget.NewButton(IconClose, tc.Dismiss)
	tc.closeBtn.Importance = widget.LowImportance
	return tc
}

// Message returns the shown message
func (tc *ToastCard) Message() model.ToastMessage {
	return tc.message
}

// Dismiss removes the card's message from the service
func (tc *ToastCard) Dismiss() {
	if tc.onDismiss != nil {
		tc.onDismiss(tc.message.ID)
	}
}

// CreateRenderer implements fyne.Widget
func (tc *ToastCard) CreateRenderer() fyne.WidgetRenderer {
	body := container.NewBorder(nil, nil, nil, container.NewVBox(tc.closeBtn), tc.label)
	return widget.NewSimpleRenderer(container.NewStack(tc.background, container.NewPadded(body)))
}

// MinSize keeps cards at a fixed width
func (tc *ToastCard) MinSize() fyne.Size {
	size := tc.BaseWidget.MinSize()
	if size.Width < ToastWidth {
		size.Width = ToastWidth
	}
	return size
}

// Dragged implements fyne.Draggable
func (tc *ToastCard) Dragged(event *fyne.DragEvent) {
	tc.swipe.Drag(event)
}

// DragEnd implements fyne.Draggable
func (tc *ToastCard) DragEnd() {
	if tc.swipe.End() == GestureSwipeRight {
		tc.Dismiss()
	}
}
