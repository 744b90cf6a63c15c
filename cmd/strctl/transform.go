package main

import (
	"github.com/carmesim/libstring/strbuf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(
		newTransformCmd("lower", "Convert ASCII letters to lower case", (*strbuf.Buffer).ToLower),
		newTransformCmd("upper", "Convert ASCII letters to upper case", (*strbuf.Buffer).ToUpper),
		newTransformCmd("reverse", "Reverse the bytes of a string", (*strbuf.Buffer).Reverse),
	)
}

// newTransformCmd builds a command that maps the input to a new buffer.
func newTransformCmd(name, short string, fn func(*strbuf.Buffer) (*strbuf.Buffer, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [string]",
		Short: short,
		Long: short + `.

Example:
  strctl ` + name + ` "THE CarmesiM PROJECT."
  strctl ` + name + ` --file input.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(args, fn)
		},
	}
}

func runTransform(args []string, fn func(*strbuf.Buffer) (*strbuf.Buffer, error)) error {
	r := newRegistry()
	defer r.ReleaseAll()

	b, _, err := inputBuffer(r, args, 0, 0)
	if err != nil {
		return err
	}
	out, err := fn(b)
	if err != nil {
		return err
	}
	return printBuffer(out)
}
