package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dhamidi/yomi/scanner"
	"github.com/dhamidi/yomi/syntax"
	"github.com/dhamidi/yomi/tspath"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Scan a file and dump its token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			fs := afero.NewOsFs()

			data, err := afero.ReadFile(fs, filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			scriptKind := tspath.GetScriptKindFromFileName(filename)
			s := scanner.New(string(data))
			s.SetLanguageVariant(tspath.GetLanguageVariant(scriptKind))
			s.SetOnError(func(pos, length int, message, arg string) {
				if arg != "" {
					message = fmt.Sprintf(message, arg)
				}
				fmt.Fprintf(os.Stderr, "%s:%d: %s\n", filename, pos, message)
			})

			for {
				kind := s.Scan()
				if value := s.TokenValue(); value != "" && kind != syntax.KindEndOfFile {
					fmt.Printf("%6d..%-6d %-32s %q\n", s.TokenStart(), s.TokenEnd(), kind, value)
				} else {
					fmt.Printf("%6d..%-6d %s\n", s.TokenStart(), s.TokenEnd(), kind)
				}
				if kind == syntax.KindEndOfFile || kind == syntax.KindNonTextFileMarkerTrivia {
					break
				}
			}
			return nil
		},
	}

	return cmd
}
