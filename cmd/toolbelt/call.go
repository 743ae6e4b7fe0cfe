package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [key=value...]",
	Short: "Call a tool and print its result",
	Long: `Calls a registered tool. Arguments are given as key=value pairs where each value is
parsed as a YAML literal, so numbers, booleans and lists keep their type:

  toolbelt call array.chunk values=[1,2,3,4,5] size=2
  toolbelt call text.initials value="ada lovelace"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		toolArgs, err := parseArgs(args[1:])
		if err != nil {
			return err
		}

		kit, err := newKit()
		if err != nil {
			return err
		}

		result, err := kit.Call(cmd.Context(), args[0], toolArgs)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return writeResult(cmd.OutOrStdout(), output, result)
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().StringP("output", "o", "json", "Output format: 'json' or 'yaml'")
}

// parseArgs turns key=value pairs into a tool argument map.
// Values that are not valid YAML are kept as plain strings.
func parseArgs(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q: expected key=value", pair)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil || value == nil {
			value = raw
		}
		out[key] = value
	}
	return out, nil
}

func writeResult(w io.Writer, format string, result any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q: supported json, yaml", format)
	}
}
