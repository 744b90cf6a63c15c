package main

import (
	"fmt"
	"strconv"

	"github.com/carmesim/libstring/strbuf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "mid [string] <start> [length]",
			Short: "Extract a substring by position",
			Long: `The mid command prints length bytes of the input starting at start. Without
a length (or with -1) it prints the rest of the input. Out-of-range requests
print an empty string.

Example:
  strctl mid "Hello, World" 7
  strctl mid "Hello, World" 0 5`,
			Args: cobra.RangeArgs(1, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMid(args)
			},
		},
		newEdgeCmd("left", "Print the first n bytes of a string", (*strbuf.Buffer).Left),
		newEdgeCmd("right", "Print the last n bytes of a string", (*strbuf.Buffer).Right),
	)
}

func runMid(args []string) error {
	r := newRegistry()
	defer r.ReleaseAll()

	b, rest, err := inputBuffer(r, args, 1, 2)
	if err != nil {
		return err
	}
	start, err := intArg("start", rest[0])
	if err != nil {
		return err
	}
	length := strbuf.ToEnd
	if len(rest) == 2 {
		if length, err = intArg("length", rest[1]); err != nil {
			return err
		}
	}

	out, err := b.Mid(start, length)
	if err != nil {
		return err
	}
	return printBuffer(out)
}

func newEdgeCmd(name, short string, fn func(*strbuf.Buffer, int) (*strbuf.Buffer, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [string] <n>",
		Short: short,
		Long: short + `. An n of at least the input length prints the whole input.

Example:
  strctl ` + name + ` "Hello, World" 5`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdge(args, fn)
		},
	}
}

func runEdge(args []string, fn func(*strbuf.Buffer, int) (*strbuf.Buffer, error)) error {
	r := newRegistry()
	defer r.ReleaseAll()

	b, rest, err := inputBuffer(r, args, 1, 1)
	if err != nil {
		return err
	}
	n, err := intArg("n", rest[0])
	if err != nil {
		return err
	}
	out, err := fn(b, n)
	if err != nil {
		return err
	}
	return printBuffer(out)
}

func intArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, s)
	}
	return n, nil
}
