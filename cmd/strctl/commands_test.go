package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carmesim/libstring/strbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"lower", []string{"lower", "THE CarmesiM PROJECT."}, "the carmesim project.\n", false},
		{"upper", []string{"upper", "The Carmesim Project."}, "THE CARMESIM PROJECT.\n", false},
		{"reverse", []string{"reverse", "stressed"}, "desserts\n", false},
		{"contains found", []string{"contains", "Oompa loompas are doomed.", "loompas"}, "true\n", false},
		{"contains missing", []string{"contains", "Oompa loompas are doomed.", "Loompas"}, "false\n", false},
		{"concat", []string{"concat", "The Carmesim", " project."}, "The Carmesim project.\n", false},
		{"concat many", []string{"concat", "a", "b", "c"}, "abc\n", false},
		{"append", []string{"append", "The Carmesim", " project."}, "The Carmesim project.\n", false},
		{"replace", []string{"replace", "home/user/path", "home/user", "~"}, "~/path\n", false},
		{"replace-char", []string{"replace-char", "Oompa loompas are doomed.", "o", "z"}, "Ozmpa lzzmpas are dzzmed.\n", false},
		{"mid rest", []string{"mid", "Hello, World", "7"}, "World\n", false},
		{"mid length", []string{"mid", "Hello, World", "0", "5"}, "Hello\n", false},
		{"mid past end", []string{"mid", "Hello, World", "40"}, "\n", false},
		{"left", []string{"left", "Hello, World", "5"}, "Hello\n", false},
		{"right", []string{"right", "Hello, World", "5"}, "World\n", false},
		{"tokens", []string{"tokens", "The Carmesim Project", " "}, "The\nCarmesim\nProject\n", false},
		{"swap", []string{"swap", "oranges", "apples"}, "apples\noranges\n", false},
		{"reserve", []string{"reserve", "test", "20"}, "size=4 reserved=20\n", false},

		{"reserve below size", []string{"reserve", "test", "2"}, "", true},
		{"replace non-terminating", []string{"replace", "aa", "a", "aa"}, "", true},
		{"replace overlapping growth", []string{"replace", "aab", "ab", "bbaa"}, "", true},
		{"replace-char multi-byte", []string{"replace-char", "abc", "ab", "z"}, "", true},
		{"mid bad start", []string{"mid", "abc", "x"}, "", true},
		{"missing input", []string{"lower"}, "", true},
		{"too many args", []string{"reserve", "test", "20", "30"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCLI(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err, "output: %s", output)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, output)
		})
	}
}

func TestCommands_JSON(t *testing.T) {
	output, err := runCLI(t, "reserve", "test", "20", "--json")
	require.NoError(t, err)
	var res bufferResult
	decodeJSON(t, output, &res)
	assert.Equal(t, bufferResult{Value: "test", Size: 4, Reserved: 20}, res)

	output, err = runCLI(t, "replace-char", "Oompa loompas are doomed.", "o", "z", "--json")
	require.NoError(t, err)
	var rc replaceCharResult
	decodeJSON(t, output, &rc)
	assert.Equal(t, 5, rc.Replaced)
	assert.Equal(t, "Ozmpa lzzmpas are dzzmed.", rc.Value)

	output, err = runCLI(t, "tokens", "a, b, c", ", ", "--json")
	require.NoError(t, err)
	var toks tokensResult
	decodeJSON(t, output, &toks)
	assert.Equal(t, []string{"a", "b", "c"}, toks.Tokens)

	output, err = runCLI(t, "contains", "abc", "", "--json")
	require.NoError(t, err)
	var cr containsResult
	decodeJSON(t, output, &cr)
	assert.Equal(t, containsResult{Found: true, Index: 0}, cr)

	output, err = runCLI(t, "swap", "oranges", "apples", "--json")
	require.NoError(t, err)
	var sr swapResult
	decodeJSON(t, output, &sr)
	assert.Equal(t, "apples", sr.First.Value)
	assert.Equal(t, 7, sr.First.Reserved)
	assert.Equal(t, 8, sr.Second.Reserved)
	assert.Equal(t, "oranges", sr.Second.Value)
}

func TestCommands_Verbose(t *testing.T) {
	output, err := runCLI(t, "append", "ab", "cd", "--verbose")
	require.NoError(t, err)
	assertContains(t, output, []string{
		`appended "cd": size=4 reserved=5`,
		"abcd\n",
		"size=4 reserved=5",
	})
}

func TestCommands_Quiet(t *testing.T) {
	output, err := runCLI(t, "lower", "ABC", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestCommands_File(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("The Carmesim Project"), 0o644))
	output, err := runCLI(t, "tokens", " ", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "The\nCarmesim\nProject\n", output)

	legacy := filepath.Join(dir, "legacy.txt")
	require.NoError(t, os.WriteFile(legacy, []byte("CAF\xc9"), 0o644))
	output, err = runCLI(t, "lower", "--file", legacy, "--charset", "windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "cafÉ\n", output, "only ASCII letters change case")

	_, err = runCLI(t, "lower", "--file", filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, strbuf.ErrArgument)
}

func TestCommands_MaxCapacity(t *testing.T) {
	_, err := runCLI(t, "append", "abc", " and more", "--max-capacity", "8")
	require.ErrorIs(t, err, strbuf.ErrAllocationFailed)

	output, err := runCLI(t, "append", "abc", "de", "--max-capacity", "8")
	require.NoError(t, err)
	assert.Equal(t, "abcde\n", output)
}

func TestVersionCommand(t *testing.T) {
	output, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "strctl dev")
}
