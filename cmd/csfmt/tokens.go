package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csfmt/internal/syntax"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] file.cstree",
	Short: "Dump the token stream of a serialized tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type tokenPayload struct {
	ID        uint32 `json:"id"`
	Kind      string `json:"kind"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Text      string `json:"text,omitempty"`
	ZeroWidth bool   `json:"zero_width,omitempty"`
	Missing   bool   `json:"missing,omitempty"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	tree, err := syntax.Decode(data)
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		for id := syntax.TokenID(1); uint32(id) <= tree.TokenCount(); id++ {
			tok := tree.Token(id)
			flags := ""
			if tok.Missing {
				flags = " [missing]"
			} else if tok.ZeroWidth {
				flags = " [zero-width]"
			}
			fmt.Fprintf(os.Stdout, "%4d  %-12s %d..%d  %q%s\n",
				id, tok.Kind, tok.Span.Start, tok.Span.End, tok.Text, flags)
		}
		return nil
	case "json":
		payload := make([]tokenPayload, 0, tree.TokenCount())
		for id := syntax.TokenID(1); uint32(id) <= tree.TokenCount(); id++ {
			tok := tree.Token(id)
			payload = append(payload, tokenPayload{
				ID:        uint32(id),
				Kind:      tok.Kind.String(),
				StartByte: tok.Span.Start,
				EndByte:   tok.Span.End,
				Text:      tok.Text,
				ZeroWidth: tok.ZeroWidth,
				Missing:   tok.Missing,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
