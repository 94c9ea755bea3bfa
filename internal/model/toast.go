package model

import "time"

// ToastKind selects the styling of a notification
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// String returns the string representation of ToastKind
func (k ToastKind) String() string {
	return string(k)
}

// ToastMessage is one transient notification
type ToastMessage struct {
	ID          string
	Kind        ToastKind
	Description string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}
