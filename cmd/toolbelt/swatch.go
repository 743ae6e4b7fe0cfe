package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/toolbelt/internal/presentation/tui"
	"github.com/aretw0/toolbelt/pkg/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch <color>...",
	Short: "Preview colours in the terminal",
	Long: `Prints a coloured block for every #rrggbb or #rgb argument, followed by its oklch() form.
With --palette the nearest entry of a stored palette is shown next to each colour.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paletteName, _ := cmd.Flags().GetString("palette")
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		var palette *color.Palette
		if paletteName != "" {
			src, err := openPalettes()
			if err != nil {
				return err
			}
			if src == nil {
				return errors.New("--palette needs palettes.dir in the configuration")
			}
			p, err := src.Palette(cmd.Context(), paletteName)
			if err != nil {
				return err
			}
			palette = &p
		}

		out := cmd.OutOrStdout()
		profile := termenv.EnvColorProfile()
		if show, _ := cmd.Flags().GetBool("banner"); show {
			tui.PrintBanner(out)
		}

		for _, arg := range args {
			c, err := color.Parse(arg)
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			fmt.Fprintln(out, tui.Swatch(profile, c, nearestNote(palette, c, threshold)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swatchCmd)
	swatchCmd.Flags().String("palette", "", "Name of a stored palette to match against")
	swatchCmd.Flags().Float64("threshold", color.DefaultThreshold, "Largest distance counted as a match")
	swatchCmd.Flags().Bool("banner", true, "Print the toolbelt banner first")
}

func nearestNote(palette *color.Palette, c color.RGB, threshold float64) string {
	if palette == nil {
		return ""
	}
	idx, ok := palette.Nearest(c, threshold)
	if !ok {
		return fmt.Sprintf("no match in %s", palette.Name)
	}
	return fmt.Sprintf("%s[%d] %s", palette.Name, idx, palette.Colors[idx].Hex())
}
