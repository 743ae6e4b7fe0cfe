package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/toolbelt/pkg/registry"
)

// Catalogue renders tools as a markdown document, one section per name prefix
// ("array", "color", ...).
func Catalogue(tools []registry.Tool) string {
	var sb strings.Builder
	sb.WriteString("# Tools\n")

	group := ""
	for _, tool := range tools {
		prefix, _, _ := strings.Cut(tool.Name, ".")
		if prefix != group {
			group = prefix
			fmt.Fprintf(&sb, "\n## %s\n", group)
		}

		fmt.Fprintf(&sb, "\n### `%s`\n\n%s\n", tool.Name, tool.Description)
		if len(tool.Params) == 0 {
			continue
		}
		sb.WriteString("\n| Argument | Type | Required | Description |\n|---|---|---|---|\n")
		for _, p := range tool.Params {
			typ := p.Type
			if typ == registry.TypeAny {
				typ = "any"
			}
			required := ""
			if p.Required {
				required = "yes"
			}
			fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n", p.Name, typ, required, p.Description)
		}
	}
	return sb.String()
}

// PlainCatalogue lists tool names and descriptions, one per line.
func PlainCatalogue(tools []registry.Tool) string {
	width := 0
	for _, tool := range tools {
		width = max(width, len(tool.Name))
	}

	var sb strings.Builder
	for _, tool := range tools {
		fmt.Fprintf(&sb, "%-*s  %s\n", width, tool.Name, tool.Description)
	}
	return sb.String()
}
