package color

import "errors"

// ErrInvalidHex is returned when a string is not a #rgb or #rrggbb hex colour.
var ErrInvalidHex = errors.New("invalid hex color")

// ErrInvalidColor is returned by Parse for strings that are neither hex nor oklch().
var ErrInvalidColor = errors.New("invalid color")
