// Package numeric holds small arithmetic helpers: clamping, percentage interpolation,
// decimal rounding and the magnitude/angle of 2D vectors.
package numeric
