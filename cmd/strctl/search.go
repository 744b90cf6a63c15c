package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "contains [string] <needle>",
		Short: "Report whether a string contains a substring",
		Long: `The contains command reports whether needle occurs in the input and at
which position. An empty needle is always found at position 0.

Example:
  strctl contains "Oompa loompas are doomed." loompas`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContains(args)
		},
	})
}

type containsResult struct {
	Found bool `json:"found"`
	Index int  `json:"index"`
}

func runContains(args []string) error {
	r := newRegistry()
	defer r.ReleaseAll()

	b, rest, err := inputBuffer(r, args, 1, 1)
	if err != nil {
		return err
	}
	res := containsResult{Index: b.Index(rest[0])}
	res.Found = res.Index >= 0

	if settings.JSON {
		return printJSON(res)
	}
	printInfo("%t\n", res.Found)
	printVerbose("index=%d\n", res.Index)
	return nil
}
