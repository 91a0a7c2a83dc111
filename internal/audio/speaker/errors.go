package speaker

import "errors"

// ErrClosed is returned when playing on a closed Player
var ErrClosed = errors.New("speaker: player is closed")

// ErrUnsupported is returned by Open on builds without an audio backend
var ErrUnsupported = errors.New("audio output not available: built without cgo (Linux requires cgo for ALSA)")
