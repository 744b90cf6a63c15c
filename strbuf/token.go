package strbuf

import (
	"bytes"
	"iter"
)

// Tokenizer splits a byte slice into pieces separated by a delimiter string.
// Each Tokenizer keeps its own position, so several inputs can be split at
// the same time.
//
// Splitting is destructive: the first byte of every delimiter occurrence
// consumed is overwritten with NUL in the source slice. Returned tokens alias
// the source.
type Tokenizer struct {
	src   []byte
	delim []byte
	pos   int
	done  bool
}

// Tokenize returns a Tokenizer over src that splits on every occurrence of
// the whole delim string (not on any of its bytes).
func Tokenize(src []byte, delim string) *Tokenizer {
	return &Tokenizer{src: src, delim: []byte(delim)}
}

// FirstToken starts tokenizing src and returns the first token together with
// the Tokenizer that yields the rest.
func FirstToken(src []byte, delim string) ([]byte, *Tokenizer, bool) {
	t := Tokenize(src, delim)
	tok, ok := t.Next()
	return tok, t, ok
}

// Next returns the next token. Once no delimiter is left it returns the
// remaining input as the last token; after that ok is false. An empty
// delimiter yields the whole input as a single token.
func (t *Tokenizer) Next() (tok []byte, ok bool) {
	if t == nil || t.done {
		return nil, false
	}
	rest := t.src[t.pos:]
	i := -1
	if len(t.delim) > 0 {
		i = bytes.Index(rest, t.delim)
	}
	if i < 0 {
		t.done = true
		t.pos = len(t.src)
		return rest, true
	}
	rest[i] = 0
	t.pos += i + len(t.delim)
	return rest[:i:i], true
}

// All returns an iterator over the remaining tokens.
func (t *Tokenizer) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}
