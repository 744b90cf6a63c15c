package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "reserve [string] <capacity>",
		Short: "Set a buffer's capacity and show its size",
		Long: `The reserve command builds a buffer, sets its capacity to exactly the given
number of bytes and prints the resulting size and capacity. A capacity
below the string's length is an error.

Example:
  strctl reserve test 20`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReserve(args)
		},
	})
}

func runReserve(args []string) error {
	r := newRegistry()
	defer r.ReleaseAll()

	b, rest, err := inputBuffer(r, args, 1, 1)
	if err != nil {
		return err
	}
	n, err := intArg("capacity", rest[0])
	if err != nil {
		return err
	}
	printVerbose("before: size=%d reserved=%d\n", b.Len(), b.Cap())
	if err := b.Reserve(n); err != nil {
		return err
	}

	if settings.JSON {
		return printJSON(resultOf(b))
	}
	printInfo("size=%d reserved=%d\n", b.Len(), b.Cap())
	return nil
}
