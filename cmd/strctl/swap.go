package main

import (
	"github.com/carmesim/libstring/strbuf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "swap [first] <second>",
		Short: "Swap the contents of two buffers",
		Long: `The swap command builds two buffers, exchanges their storage and prints
both, one per line.

Example:
  strctl swap oranges apples`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwap(args)
		},
	})
}

type swapResult struct {
	First  bufferResult `json:"first"`
	Second bufferResult `json:"second"`
}

func runSwap(args []string) error {
	r := newRegistry()
	defer r.ReleaseAll()

	a, rest, err := inputBuffer(r, args, 1, 1)
	if err != nil {
		return err
	}
	b, err := r.From(rest[0])
	if err != nil {
		return err
	}
	if err := strbuf.Swap(a, b); err != nil {
		return err
	}

	if settings.JSON {
		return printJSON(swapResult{First: resultOf(a), Second: resultOf(b)})
	}
	printInfo("%s\n%s\n", a, b)
	return nil
}
