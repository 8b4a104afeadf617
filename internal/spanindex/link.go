// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package spanindex

import (
	"fmt"

	"github.com/phosphorco/layered-nlp/internal/docpos"
)

// Role enumerates the structural relationships clause-link resolvers emit
// (spec.md §4.6).
type Role int

const (
	RoleParent Role = iota
	RoleChild
	RoleConjunct
	RoleException
	RoleSelf
)

func (r Role) String() string {
	switch r {
	case RoleParent:
		return "Parent"
	case RoleChild:
		return "Child"
	case RoleConjunct:
		return "Conjunct"
	case RoleException:
		return "Exception"
	case RoleSelf:
		return "Self"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Link is a typed directed edge between two spans (spec.md §4.6). It is
// itself inserted into the Index as just another typed span, anchored at
// Anchor, so link queries compose uniformly with QueryByType.
type Link[R any] struct {
	Anchor docpos.DocSpan
	Target docpos.DocSpan
	Role   R
}

var linkTag = tagOf[Link[Role]]()

func linkSpan(anchor, target docpos.DocSpan, role Role) SemanticSpan {
	return SemanticSpan{
		Span:    anchor,
		TypeTag: linkTag,
		Value:   Link[Role]{Anchor: anchor, Target: target, Role: role},
	}
}

// ConjunctSpans builds the symmetric pair A->B and B->A required by the
// bidirectionality rule (spec.md §4.6). It is pure: a DocumentResolver.Resolve
// that can only return []SemanticSpan (never mutate an *Index directly) calls
// this the same way InsertConjunct does.
func ConjunctSpans(a, b docpos.DocSpan) []SemanticSpan {
	return []SemanticSpan{
		linkSpan(a, b, RoleConjunct),
		linkSpan(b, a, RoleConjunct),
	}
}

// ParentChildSpans builds the asymmetric pair parent.Child->child and
// child.Parent->parent (spec.md §4.6).
func ParentChildSpans(parent, child docpos.DocSpan) []SemanticSpan {
	return []SemanticSpan{
		linkSpan(parent, child, RoleChild),
		linkSpan(child, parent, RoleParent),
	}
}

// ExceptionSpan builds the one-directional Exception -> main edge (spec.md
// §4.6): the exception clause carries the link, the main clause gets no
// automatic reverse edge.
func ExceptionSpan(exception, main docpos.DocSpan) SemanticSpan {
	return linkSpan(exception, main, RoleException)
}

// SelfSpan builds a Self-reference for a clause carrying semantic
// attributes without any structural sibling (spec.md §4.6), so uniform
// "find all clauses with attribute X" queries always find it.
func SelfSpan(clause docpos.DocSpan) SemanticSpan {
	return linkSpan(clause, clause, RoleSelf)
}

// ConjunctChainSpans builds the chain topology A<->B<->C<->... for a
// coordination list, never linking non-adjacent members directly (spec.md
// §4.6: "emit A<->B and B<->C (chain), never A<->C directly").
func ConjunctChainSpans(members []docpos.DocSpan) []SemanticSpan {
	var out []SemanticSpan
	for i := 0; i+1 < len(members); i++ {
		out = append(out, ConjunctSpans(members[i], members[i+1])...)
	}
	return out
}

func insertSemanticSpan(idx *Index, sp SemanticSpan) SpanId {
	return idx.Insert(sp.Span, sp.TypeTag, sp.Value, sp.Associations)
}

// InsertConjunct inserts the symmetric pair A->B and B->A required by the
// bidirectionality rule (spec.md §4.6).
func InsertConjunct(idx *Index, a, b docpos.DocSpan) (SpanId, SpanId) {
	spans := ConjunctSpans(a, b)
	return insertSemanticSpan(idx, spans[0]), insertSemanticSpan(idx, spans[1])
}

// InsertParentChild inserts the asymmetric pair parent.Child->child and
// child.Parent->parent (spec.md §4.6).
func InsertParentChild(idx *Index, parent, child docpos.DocSpan) (childEdge, parentEdge SpanId) {
	spans := ParentChildSpans(parent, child)
	return insertSemanticSpan(idx, spans[0]), insertSemanticSpan(idx, spans[1])
}

// InsertException inserts the one-directional Exception -> main edge
// (spec.md §4.6): the exception clause carries the link, the main clause
// gets no automatic reverse edge.
func InsertException(idx *Index, exception, main docpos.DocSpan) SpanId {
	return insertSemanticSpan(idx, ExceptionSpan(exception, main))
}

// InsertSelf inserts a Self-reference for a clause carrying semantic
// attributes without any structural sibling (spec.md §4.6), so uniform
// "find all clauses with attribute X" queries always find it.
func InsertSelf(idx *Index, clause docpos.DocSpan) SpanId {
	return insertSemanticSpan(idx, SelfSpan(clause))
}

// ConjunctChain inserts the chain topology A<->B<->C<->... for a
// coordination list, never linking non-adjacent members directly (spec.md
// §4.6: "emit A<->B and B<->C (chain), never A<->C directly").
func ConjunctChain(idx *Index, members []docpos.DocSpan) {
	for _, sp := range ConjunctChainSpans(members) {
		insertSemanticSpan(idx, sp)
	}
}
