package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/risor-io/jsfront/lexer"
	"github.com/risor-io/jsfront/parser"
	"github.com/risor-io/jsfront/token"
)

func (a *app) tokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens produced by the lexer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.tokensHandler,
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json)")
	return cmd
}

// TokenJSON is the JSON form of a token.
type TokenJSON struct {
	Type    string `json:"type"`
	Literal string `json:"literal,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset"`
}

func (a *app) tokensHandler(cmd *cobra.Command, args []string) error {
	sources, err := a.getSources(cmd, args)
	if err != nil {
		return err
	}
	src := sources[0]
	l := lexer.New(src.code)
	l.SetFilename(src.name)
	tokens, err := l.All()
	if err != nil {
		return parser.NewLexError(err, src.code, src.name)
	}
	a.logger.Debug().Int("count", len(tokens)).Str("file", src.name).Msg("lexed input")

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "json":
		items := make([]TokenJSON, 0, len(tokens))
		for _, tok := range tokens {
			items = append(items, TokenJSON{
				Type:    string(tok.Type),
				Literal: tok.Literal,
				Line:    tok.StartPosition.LineNumber(),
				Column:  tok.StartPosition.ColumnNumber(),
				Offset:  tok.StartPosition.Char,
			})
		}
		data, err := a.getOutputJSON(items, out)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "text", "":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, tok := range tokens {
			fmt.Fprintf(tw, "%d:%d\t%s\t%s\n",
				tok.StartPosition.LineNumber(),
				tok.StartPosition.ColumnNumber(),
				tok.Type,
				tokenText(tok))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func tokenText(tok token.Token) string {
	if tok.Type == token.EOF {
		return ""
	}
	return tok.Literal
}
