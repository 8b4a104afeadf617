// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers

import (
	"strings"

	"github.com/phosphorco/layered-nlp/internal/selection"
	"github.com/phosphorco/layered-nlp/internal/token"
)

var modalKeywords = map[string]bool{
	"shall":  true,
	"must":   true,
	"may":    true,
	"should": true,
}

// ContractKeywordResolver tags modal-verb tokens as ContractKeyword
// attributes (spec.md §4.1 "POS-like keyword tagging", first stage of the
// recommended resolver chain in spec.md §9).
type ContractKeywordResolver struct{}

func (ContractKeywordResolver) Go(sel selection.Selection) []selection.CursorAssignment[ContractKeyword] {
	var out []selection.CursorAssignment[ContractKeyword]
	for _, m := range selection.FindBy(sel, selection.TokenKind(token.Word)) {
		if modalKeywords[strings.ToLower(m.Value.Text)] {
			out = append(out, selection.Assign(m.Selection, ContractKeyword{Text: m.Value.Text}).Build())
		}
	}
	return out
}
