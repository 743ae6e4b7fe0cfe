package main

import (
	"fmt"
	"os"

	"github.com/aretw0/toolbelt/internal/presentation/graph"
	"github.com/aretw0/toolbelt/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available tools",
	Long: `Prints the tool catalogue. On a terminal the catalogue is rendered as markdown;
otherwise a plain aligned list is printed. Use --format mermaid to export a flowchart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		highlight, _ := cmd.Flags().GetStringSlice("highlight")

		kit, err := newKit()
		if err != nil {
			return err
		}
		catalogue := kit.Registry().List()
		out := cmd.OutOrStdout()

		if format == "auto" {
			format = "plain"
			if tui.IsTerminal(os.Stdout) {
				format = "markdown"
			}
		}

		switch format {
		case "plain":
			fmt.Fprint(out, tui.PlainCatalogue(catalogue))
		case "markdown":
			render, err := tui.NewRenderer()
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}
			rendered, err := render(tui.Catalogue(catalogue))
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
		case "mermaid":
			fmt.Fprint(out, graph.GenerateMermaid(catalogue, &graph.Overlay{Highlighted: highlight}))
		default:
			return fmt.Errorf("unknown format %q: supported auto, plain, markdown, mermaid", format)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.Flags().StringP("format", "f", "auto", "Output format: auto, plain, markdown or mermaid")
	toolsCmd.Flags().StringSlice("highlight", nil, "Tools to highlight in the mermaid chart")
}
