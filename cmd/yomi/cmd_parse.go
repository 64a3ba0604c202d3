package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dhamidi/yomi/ast"
	"github.com/dhamidi/yomi/parser"
	"github.com/dhamidi/yomi/tspath"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a TypeScript or JavaScript file and dump the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			fs := afero.NewOsFs()

			data, err := afero.ReadFile(fs, filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			file := parser.ParseSourceFile(filename, string(data), tspath.ScriptKindUnknown)

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(&file.Node); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "tree":
				if includePositions {
					fmt.Println(file.Node.StringWithPositions())
				} else {
					fmt.Println(file.Node.String())
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			for _, d := range file.Diagnostics {
				line, character := file.LineAndCharacter(d.Start)
				fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", d.FileName, line+1, character+1, d.Format())
			}
			if len(file.Diagnostics) > 0 {
				return fmt.Errorf("%d parse error(s)", len(file.Diagnostics))
			}
			if ast.GetExternalModuleIndicator(file) != nil && outputFormat == "tree" {
				fmt.Fprintln(os.Stderr, "file is an external module")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (json, tree)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include byte positions in tree output")

	return cmd
}
