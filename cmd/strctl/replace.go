package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "replace [string] <old> <new>",
			Short: "Replace every occurrence of a substring",
			Long: `The replace command substitutes new for every occurrence of old. The search
restarts from the beginning after each substitution. A rule that does not
shrink the string and would match text it just inserted is rejected, since it
may never finish; the input is then left unchanged.

Example:
  strctl replace "home/user/path" "home/user" "~"`,
			Args: cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runReplace(args)
			},
		},
		&cobra.Command{
			Use:   "replace-char [string] <before> <after>",
			Short: "Replace every occurrence of a single byte",
			Long: `The replace-char command replaces every before byte with after and reports
how many were replaced (with --verbose or --json).

Example:
  strctl replace-char "Oompa loompas are doomed." o z`,
			Args: cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runReplaceChar(args)
			},
		},
	)
}

func runReplace(args []string) error {
	r := newRegistry()
	defer r.ReleaseAll()

	b, rest, err := inputBuffer(r, args, 2, 2)
	if err != nil {
		return err
	}
	if err := b.Replace(rest[0], rest[1]); err != nil {
		return err
	}
	return printBuffer(b)
}

type replaceCharResult struct {
	bufferResult
	Replaced int `json:"replaced"`
}

func runReplaceChar(args []string) error {
	r := newRegistry()
	defer r.ReleaseAll()

	b, rest, err := inputBuffer(r, args, 2, 2)
	if err != nil {
		return err
	}
	before, err := singleByte("before", rest[0])
	if err != nil {
		return err
	}
	after, err := singleByte("after", rest[1])
	if err != nil {
		return err
	}

	n, err := b.ReplaceChar(before, after)
	if err != nil {
		return err
	}
	if settings.JSON {
		return printJSON(replaceCharResult{bufferResult: resultOf(b), Replaced: n})
	}
	printInfo("%s\n", b)
	printVerbose("replaced=%d\n", n)
	return nil
}

func singleByte(name, s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%s must be a single byte, got %q", name, s)
	}
	return s[0], nil
}
