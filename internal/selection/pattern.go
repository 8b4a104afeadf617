// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package selection

import (
	"strings"

	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/token"
)

// Matcher tries to match against l starting at token index pos. On
// success it returns the matched value, the number of tokens consumed, and
// ok=true. Every matcher here consumes at least one token on success except
// Opt, which succeeds consuming 0 when its inner matcher does not match.
type Matcher[T any] func(l *token.Line, pos int) (value T, consumed int, ok bool)

// TokenText matches a single token whose text satisfies pred.
func TokenText(pred func(text string) bool) Matcher[string] {
	return func(l *token.Line, pos int) (string, int, bool) {
		if pos < 0 || pos >= l.Len() {
			return "", 0, false
		}
		tk := l.Tokens[pos]
		if pred(tk.Text) {
			return tk.Text, 1, true
		}
		return "", 0, false
	}
}

// Literal matches a single token whose text equals want, case-insensitively.
func Literal(want string) Matcher[string] {
	return TokenText(func(text string) bool { return strings.EqualFold(text, want) })
}

// TokenKind matches a single token of the given kind.
func TokenKind(kind token.Kind) Matcher[token.Token] {
	return func(l *token.Line, pos int) (token.Token, int, bool) {
		if pos < 0 || pos >= l.Len() {
			return token.Token{}, 0, false
		}
		tk := l.Tokens[pos]
		if tk.Kind == kind {
			return tk, 1, true
		}
		return token.Token{}, 0, false
	}
}

// WhitespaceMatcher matches a single whitespace token.
func WhitespaceMatcher() Matcher[token.Token] { return TokenKind(token.Whitespace) }

// Attr matches an already-attached attribute of type T whose range starts
// exactly at pos, consuming its whole range.
func Attr[T any]() Matcher[T] {
	return func(l *token.Line, pos int) (T, int, bool) {
		for _, rv := range attrstore.Find[T](l.Store) {
			if rv.Range.Start == pos {
				return rv.Value, rv.Range.Len(), true
			}
		}
		var zero T
		return zero, 0, false
	}
}

// AttrEq matches an already-attached attribute of type T anchored at pos
// whose value equals want.
func AttrEq[T comparable](want T) Matcher[T] {
	base := Attr[T]()
	return func(l *token.Line, pos int) (T, int, bool) {
		v, consumed, ok := base(l, pos)
		if ok && v == want {
			return v, consumed, true
		}
		var zero T
		return zero, 0, false
	}
}

// Pair is the paired result of Seq.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Seq matches a then b, consecutively, auto-skipping any whitespace
// tokens between them (spec.md §4.3: "whitespace between them unless a
// whitespace is explicit").
func Seq[A, B any](a Matcher[A], b Matcher[B]) Matcher[Pair[A, B]] {
	return seq(a, b, true)
}

// SeqExplicit is Seq without the automatic whitespace skip, for callers
// that include an explicit WhitespaceMatcher() stage themselves.
func SeqExplicit[A, B any](a Matcher[A], b Matcher[B]) Matcher[Pair[A, B]] {
	return seq(a, b, false)
}

func seq[A, B any](a Matcher[A], b Matcher[B], skipWhitespace bool) Matcher[Pair[A, B]] {
	return func(l *token.Line, pos int) (Pair[A, B], int, bool) {
		av, aConsumed, ok := a(l, pos)
		if !ok {
			return Pair[A, B]{}, 0, false
		}
		next := pos + aConsumed
		skipped := 0
		if skipWhitespace {
			for next+skipped < l.Len() && l.Tokens[next+skipped].Kind == token.Whitespace {
				skipped++
			}
		}
		bv, bConsumed, ok := b(l, next+skipped)
		if !ok {
			return Pair[A, B]{}, 0, false
		}
		return Pair[A, B]{First: av, Second: bv}, aConsumed + skipped + bConsumed, true
	}
}

// Or returns the first alternative (in declared order) that matches at
// pos — a deterministic tie-break (spec.md §4.3).
func Or[T any](alts ...Matcher[T]) Matcher[T] {
	return func(l *token.Line, pos int) (T, int, bool) {
		for _, m := range alts {
			if v, consumed, ok := m(l, pos); ok {
				return v, consumed, true
			}
		}
		var zero T
		return zero, 0, false
	}
}

// AnyOf is an alias for Or, matching spec.md's naming.
func AnyOf[T any](alts ...Matcher[T]) Matcher[T] { return Or(alts...) }

// Opt always succeeds: it returns m's match if present, or a zero value
// consuming 0 tokens otherwise.
func Opt[T any](m Matcher[T]) Matcher[Optional[T]] {
	return func(l *token.Line, pos int) (Optional[T], int, bool) {
		if v, consumed, ok := m(l, pos); ok {
			return Optional[T]{Value: v, Present: true}, consumed, true
		}
		return Optional[T]{}, 0, true
	}
}

// Optional is the result of Opt.
type Optional[T any] struct {
	Value   T
	Present bool
}
