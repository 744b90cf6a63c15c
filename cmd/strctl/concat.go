package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "concat [string] <suffix>...",
			Short: "Concatenate suffixes into a new buffer",
			Long: `The concat command builds a new buffer holding the input followed by every
suffix. The input buffer is left unchanged.

Example:
  strctl concat "The Carmesim" " project."`,
			Args: cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConcat(args)
			},
		},
		&cobra.Command{
			Use:   "append [string] <suffix>...",
			Short: "Append suffixes to a buffer in place",
			Long: `The append command appends every suffix to the input buffer, growing it
as needed, and prints the result with its final size and capacity.

Example:
  strctl append "The Carmesim" " project." --verbose`,
			Args: cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAppend(args)
			},
		},
	)
}

func runConcat(args []string) error {
	r := newRegistry()
	defer r.ReleaseAll()

	b, suffixes, err := inputBuffer(r, args, 1, len(args))
	if err != nil {
		return err
	}
	for _, s := range suffixes {
		if b, err = b.Concat(s); err != nil {
			return err
		}
	}
	return printBuffer(b)
}

func runAppend(args []string) error {
	r := newRegistry()
	defer r.ReleaseAll()

	b, suffixes, err := inputBuffer(r, args, 1, len(args))
	if err != nil {
		return err
	}
	for _, s := range suffixes {
		n, err := b.Append(s)
		if err != nil {
			return err
		}
		printVerbose("appended %q: size=%d reserved=%d\n", s, n, b.Cap())
	}
	return printBuffer(b)
}
