package rater

// Package rater holds the per-item state machines of the app. Every Item
// fetches its artwork once per identifier, keeps a local rating selection and
// submits it, pushing a toast for each submission outcome. Service is the
// keyed collection of items shown in the window.
