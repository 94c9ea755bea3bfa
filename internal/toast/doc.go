package toast

// Package toast implements the in-memory notification service behind the toast
// viewport. Any component can push a message; every message expires on its own
// timer and can be dismissed early.
