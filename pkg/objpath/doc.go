/*
Package objpath resolves dot-separated key paths ("a.b.c") against nested
map[string]any trees such as decoded JSON or YAML documents.

Resolve mirrors the loose lookup scripting code is used to: any missing segment yields
the caller's default. Lookup reports where the walk stopped. The typed getters coerce
the resolved value with spf13/cast and Decode binds a subtree to a struct with
mapstructure.

	doc := map[string]any{"a": map[string]any{"b": map[string]any{"c": "value"}}}
	objpath.Resolve(doc, "a.b.c", nil)     // "value"
	objpath.Resolve(doc, "x.y", "default") // "default"
*/
package objpath
