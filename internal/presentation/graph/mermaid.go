package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/toolbelt/pkg/registry"
)

// Overlay marks tools to emphasise in the generated chart.
type Overlay struct {
	Highlighted []string
}

// GenerateMermaid produces a Mermaid flowchart of the tool catalogue.
// Shapes:
// - Namespace (the part of the name before the first dot): ((Circle))
// - Tool: [[Subroutine]]
// - Parameter: [/Parallelogram/]
// Required parameters hang off a solid edge, optional ones off a dotted edge.
func GenerateMermaid(tools []registry.Tool, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	seen := make(map[string]bool)
	for _, tool := range tools {
		ns := namespace(tool.Name)
		nsID := "ns_" + sanitizeMermaidID(ns)
		if !seen[nsID] {
			seen[nsID] = true
			fmt.Fprintf(&sb, "    %s((\"%s\"))\n", nsID, ns)
		}

		toolID := sanitizeMermaidID(tool.Name)
		fmt.Fprintf(&sb, "    %s[[\"%s\"]]\n", toolID, tool.Name)
		fmt.Fprintf(&sb, "    %s --> %s\n", nsID, toolID)

		for _, p := range tool.Params {
			paramID := toolID + "__" + sanitizeMermaidID(p.Name)
			label := p.Name
			if p.Type != registry.TypeAny {
				label = fmt.Sprintf("%s: %s", p.Name, p.Type)
			}
			label = strings.ReplaceAll(label, "\"", "'")
			fmt.Fprintf(&sb, "    %s[/\"%s\"/]\n", paramID, label)

			arrow := "-.->"
			if p.Required {
				arrow = "-->"
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", toolID, arrow, paramID)
		}
	}

	if overlay != nil && len(overlay.Highlighted) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef highlighted fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")

		marked := make(map[string]bool)
		for _, name := range overlay.Highlighted {
			id := sanitizeMermaidID(name)
			if id == "" || marked[id] {
				continue
			}
			marked[id] = true
			fmt.Fprintf(&sb, "    class %s highlighted;\n", id)
		}
	}

	return sb.String()
}

func namespace(name string) string {
	if i := strings.Index(name, "."); i > 0 {
		return name[:i]
	}
	return name
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
