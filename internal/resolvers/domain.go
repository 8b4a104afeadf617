// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers

import (
	"fmt"
	"reflect"
)

func tagOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ObligationType classifies a modal obligation as a positive duty or a
// prohibition (spec.md §8 S1/S2).
type ObligationType int

const (
	Duty ObligationType = iota
	Prohibition
)

func (t ObligationType) String() string {
	switch t {
	case Duty:
		return "Duty"
	case Prohibition:
		return "Prohibition"
	default:
		return fmt.Sprintf("ObligationType(%d)", int(t))
	}
}

// ObligationPhrase is a single modal clause: who must (or must not) do what,
// and to whose benefit (spec.md §8). Beneficiary is empty when none is
// named — the passive-voice case never infers one.
type ObligationPhrase struct {
	Type        ObligationType
	Obligor     string
	Action      string
	Beneficiary string
	Passive     bool
}

func (p ObligationPhrase) String() string {
	return fmt.Sprintf("%s(%s -> %s)", p.Type, p.Obligor, p.Action)
}

// LinkedObligation is an ObligationPhrase whose obligor has been resolved
// through a pronoun chain when the phrase itself named only a pronoun
// (spec.md §8 S3, §9 design notes).
type LinkedObligation struct {
	ObligationPhrase
	ObligorResolved string
}

func (l LinkedObligation) String() string {
	return fmt.Sprintf("%s(%s -> %s)", l.Type, l.ObligorResolved, l.Action)
}

// DefinedTerm is a term introduced by a parenthetical quoted definition,
// e.g. Acme Corp ("Company") (spec.md §8 S3).
type DefinedTerm struct {
	Term string
}

func (d DefinedTerm) String() string { return d.Term }

// TermReference is an unquoted occurrence of a defined term.
type TermReference struct {
	Term string
}

func (t TermReference) String() string { return t.Term }

// Pronoun tags a single pronoun-class word token.
type Pronoun struct {
	Text string
}

func (p Pronoun) String() string { return p.Text }

// PronounChain links a pronoun occurrence to the most recent preceding
// DefinedTerm (spec.md §8 S3). A pronoun that comes before every defined
// term (cataphora) gets no chain.
type PronounChain struct {
	Pronoun    string
	Antecedent string
}

func (c PronounChain) String() string { return fmt.Sprintf("%s->%s", c.Pronoun, c.Antecedent) }

// Polarity is the net effect of a clause's negations (spec.md §8 S5).
type Polarity int

const (
	Positive Polarity = iota
	Negative
)

func (p Polarity) String() string {
	switch p {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// PolarityRecord records a clause's negation count, the pattern that
// produced it, and the net polarity after cancellation (spec.md §8 S5).
type PolarityRecord struct {
	NegationCount int
	Pattern       string
	Polarity      Polarity
}

func (r PolarityRecord) String() string {
	return fmt.Sprintf("%s(count=%d,polarity=%s)", r.Pattern, r.NegationCount, r.Polarity)
}

// ContractKeyword tags a single modal-verb token ("shall", "must", "may",
// "should") as contract-relevant vocabulary (spec.md §4.1 "POS-like keyword
// tagging").
type ContractKeyword struct {
	Text string
}

func (k ContractKeyword) String() string { return k.Text }

// NegationOp is the payload scope.Operator[NegationOp] carries: negation
// scope has no extra data beyond the operator's trigger and domain.
type NegationOp struct{}

// QuantifierOp is the payload scope.Operator[QuantifierOp] carries. Word
// records which quantifier word triggered the operator ("each", "every",
// "all", "any", "no"), since unlike negation there is more than one trigger
// spelling (spec.md §4.8).
type QuantifierOp struct {
	Word string
}
