// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers

import (
	"strings"

	"github.com/phosphorco/layered-nlp/internal/token"
)

// skipWhitespace returns the first index at or after pos that is not a
// whitespace token.
func skipWhitespace(l *token.Line, pos int) int {
	for pos < l.Len() && l.Tokens[pos].Kind == token.Whitespace {
		pos++
	}
	return pos
}

// sentenceEnd returns the index of the first "." punctuation token at or
// after from, or the line length if the clause runs to the end of line.
func sentenceEnd(l *token.Line, from int) int {
	for i := from; i < l.Len(); i++ {
		if l.Tokens[i].Kind == token.Punctuation && l.Tokens[i].Text == "." {
			return i
		}
	}
	return l.Len()
}

// findWord returns the index of the first Word token at or after from
// whose text equals want, case-insensitively.
func findWord(l *token.Line, want string, from int) (int, bool) {
	for i := from; i < l.Len(); i++ {
		if l.Tokens[i].Kind == token.Word && strings.EqualFold(l.Tokens[i].Text, want) {
			return i, true
		}
	}
	return -1, false
}

// precedingWord returns the index of the Word token immediately before pos,
// skipping whitespace but stopping at the first non-whitespace,
// non-whitespace-adjacent token that is not a word.
func precedingWord(l *token.Line, pos int) (int, bool) {
	for i := pos - 1; i >= 0; i-- {
		if l.Tokens[i].Kind == token.Word {
			return i, true
		}
		if l.Tokens[i].Kind != token.Whitespace {
			return -1, false
		}
	}
	return -1, false
}
