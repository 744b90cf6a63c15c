package main

import (
	"github.com/carmesim/libstring/strbuf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tokens [string] <delimiter>",
		Short: "Split a string on a delimiter",
		Long: `The tokens command splits the input on every occurrence of the whole
delimiter string and prints one token per line.

Example:
  strctl tokens "The Carmesim Project" " "
  strctl tokens "a, b, c" ", " --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(args)
		},
	})
}

type tokensResult struct {
	Tokens []string `json:"tokens"`
}

func runTokens(args []string) error {
	r := newRegistry()
	defer r.ReleaseAll()

	b, rest, err := inputBuffer(r, args, 1, 1)
	if err != nil {
		return err
	}

	// Tokenizing overwrites delimiters, so split a copy.
	src := append([]byte(nil), b.Bytes()...)
	res := tokensResult{Tokens: []string{}}
	for tok := range strbuf.Tokenize(src, rest[0]).All() {
		res.Tokens = append(res.Tokens, string(tok))
	}

	if settings.JSON {
		return printJSON(res)
	}
	for _, tok := range res.Tokens {
		printInfo("%s\n", tok)
	}
	return nil
}
