package objpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Resolve returns the value found at path in obj, or def when any segment is missing,
// nil, or cannot be descended into. An empty path resolves to obj itself.
func Resolve(obj map[string]any, path string, def any) any {
	v, err := Lookup(obj, path)
	if err != nil || v == nil {
		return def
	}
	return v
}

// Lookup walks path through obj. Slices may be indexed with numeric segments ("items.0.id").
// A present key holding nil is returned as nil without error.
func Lookup(obj map[string]any, path string) (any, error) {
	if path == "" {
		return obj, nil
	}

	var cur any = obj
	for _, seg := range strings.Split(path, ".") {
		next, err := step(cur, seg)
		if err != nil {
			return nil, &PathError{Path: path, Segment: seg, Err: err}
		}
		cur = next
	}
	return cur, nil
}

func step(cur any, seg string) (any, error) {
	switch node := cur.(type) {
	case map[string]any:
		v, ok := node[seg]
		if !ok {
			return nil, ErrNotFound
		}
		return v, nil
	case map[any]any:
		v, ok := node[seg]
		if !ok {
			return nil, ErrNotFound
		}
		return v, nil
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(node) {
			return nil, ErrNotFound
		}
		return node[i], nil
	case nil:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotContainer, cur)
	}
}

// String resolves path and coerces the value to a string, falling back to def.
func String(obj map[string]any, path, def string) string {
	return get(obj, path, def, cast.ToStringE)
}

// Int resolves path and coerces the value to an int, falling back to def.
func Int(obj map[string]any, path string, def int) int {
	return get(obj, path, def, cast.ToIntE)
}

// Float resolves path and coerces the value to a float64, falling back to def.
func Float(obj map[string]any, path string, def float64) float64 {
	return get(obj, path, def, cast.ToFloat64E)
}

// Bool resolves path and coerces the value to a bool, falling back to def.
func Bool(obj map[string]any, path string, def bool) bool {
	return get(obj, path, def, cast.ToBoolE)
}

func get[T any](obj map[string]any, path string, def T, conv func(any) (T, error)) T {
	v, err := Lookup(obj, path)
	if err != nil || v == nil {
		return def
	}
	out, err := conv(v)
	if err != nil {
		return def
	}
	return out
}

// Decode binds the subtree at path to out, which must be a pointer.
// Field names match case-insensitively or through `mapstructure` tags, and scalar
// types are converted loosely ("3" decodes into an int).
func Decode(obj map[string]any, path string, out any) error {
	v, err := Lookup(obj, path)
	if err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("objpath: decoder: %w", err)
	}
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("objpath: decode %q: %w", path, err)
	}
	return nil
}
