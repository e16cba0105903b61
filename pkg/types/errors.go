package types

import "errors"

// Store operation errors.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrStoreClosed = errors.New("store is not open")
)

// Persistence and snapshot errors.
var (
	ErrNoSnapshot      = errors.New("no snapshot exists")
	ErrInvalidSnapshot = errors.New("invalid database file: missing required tables")
	ErrInvalidExport   = errors.New("invalid export document")
)

// Configuration errors.
var (
	ErrInvalidMonth   = errors.New("month must be in YYYY-MM format")
	ErrWindowInverted = errors.New("start month is after end month")
)
