// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package token

import (
	"strings"

	"github.com/phosphorco/layered-nlp/internal/attrstore"
)

// Line is an ordered sequence of Tokens plus the AttributeStore that
// resolvers attach values to. Token indices are stable within a line
// (spec.md §3). Text keeps the source text NewLine was given; the tokenizer
// drops nothing (whitespace runs are tokens too), so TokenText rebuilds text
// from the tokens alone.
type Line struct {
	Text   string
	Tokens []Token
	Store  *attrstore.Store
}

// NewLine tokenizes text into a Line with a freshly allocated attribute
// store sized to the resulting token count.
func NewLine(text string) *Line {
	toks := Tokenize(text)
	return &Line{
		Text:   text,
		Tokens: toks,
		Store:  attrstore.New(len(toks)),
	}
}

// Len returns the number of tokens in the line.
func (l *Line) Len() int { return len(l.Tokens) }

// TokenText returns the literal text of tokens [start, end), reconstructed
// by concatenating each token's own text (whitespace tokens are ordinary
// members of the run, so no separator needs to be re-inserted).
func (l *Line) TokenText(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(l.Tokens) {
		end = len(l.Tokens)
	}
	if start >= end {
		return ""
	}
	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(l.Tokens[i].Text)
	}
	return b.String()
}
