package model

// Package model defines domain data structures used across the app: artworks,
// ratings, toast messages, and the tagged fetch state shared by the per-item
// state machines. Structures are plain values so the UI can render snapshots.
