package animation

import "errors"

var (
	ErrInvalidFrameCount    = errors.New("animation: frame count must be positive")
	ErrInvalidFrameDuration = errors.New("animation: frame duration must be positive")
	ErrMissingAsset         = errors.New("animation: sprite sheet not loaded")
)
