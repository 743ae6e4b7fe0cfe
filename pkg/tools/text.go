package tools

import (
	"context"

	"github.com/aretw0/toolbelt/pkg/objpath"
	"github.com/aretw0/toolbelt/pkg/registry"
	"github.com/aretw0/toolbelt/pkg/text"
)

type resolveArgs struct {
	Object  map[string]any `mapstructure:"object"`
	Path    string         `mapstructure:"path"`
	Default any            `mapstructure:"default"`
}

type textArgs struct {
	Value string `mapstructure:"value"`
}

func textTools() []registry.Tool {
	value := required("value", registry.TypeString, "Input text.")

	return []registry.Tool{
		define("object.resolve", "Value at a dotted path, or default when any segment is missing.",
			[]registry.Param{
				required("object", registry.TypeObject, "Object to walk."),
				required("path", registry.TypeString, "Dot-delimited keys; array elements by index."),
				param("default", registry.TypeAny, "Returned when the path does not resolve."),
			},
			func(_ context.Context, a resolveArgs) (any, error) {
				return objpath.Resolve(a.Object, a.Path, a.Default), nil
			}),

		define("text.initials", "Upper-cased first letters of the first and last words.", []registry.Param{value},
			func(_ context.Context, a textArgs) (any, error) {
				return text.Initials(a.Value), nil
			}),

		define("text.capitalize", "Upper-case the first character.", []registry.Param{value},
			func(_ context.Context, a textArgs) (any, error) {
				return text.Capitalize(a.Value), nil
			}),
	}
}
