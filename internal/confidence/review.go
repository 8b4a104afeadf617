// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package confidence

// ReviewableResult wraps an Ambiguous[T] with an explicit needs_review
// decision and a human-readable reason (spec.md §3, §4.7). It is how the
// core represents kind-1/kind-2 "errors" from spec.md §7: ambiguity and
// missing-antecedent are data, not failures, and always flow through.
type ReviewableResult[T any] struct {
	Ambiguous    Ambiguous[T]
	NeedsReview  bool
	ReviewReason string
}

// Certain builds a ReviewableResult that does not need review.
func Certain[T any](v Scored[T]) ReviewableResult[T] {
	return ReviewableResult[T]{Ambiguous: NewAmbiguous(v, nil, FlagNone)}
}

// Uncertain builds a ReviewableResult flagged for review, carrying
// alternatives and a reason.
func Uncertain[T any](v Scored[T], alternatives []Scored[T], reason string) ReviewableResult[T] {
	flag := FlagNone
	if len(alternatives) > 0 {
		flag = FlagScope
	}
	return ReviewableResult[T]{
		Ambiguous:    NewAmbiguous(v, alternatives, flag),
		NeedsReview:  true,
		ReviewReason: reason,
	}
}

// UncertainFlagged is Uncertain but with an explicit ambiguity flag rather
// than the FlagScope default.
func UncertainFlagged[T any](v Scored[T], alternatives []Scored[T], flag AmbiguityFlag, reason string) ReviewableResult[T] {
	return ReviewableResult[T]{
		Ambiguous:    NewAmbiguous(v, alternatives, flag),
		NeedsReview:  true,
		ReviewReason: reason,
	}
}

// SnapshotConfidence forwards to the best interpretation's Scored value,
// so the snapshot package can extract confidence/source from a
// ReviewableResult exactly as it does for a bare Scored (spec.md §6).
func (r ReviewableResult[T]) SnapshotConfidence() (float64, Source) {
	return r.Ambiguous.Best.SnapshotConfidence()
}

// NeedsReviewByPolicy reports whether v should be flagged for review under
// the given threshold, per spec.md §4.7: needs_review is true iff any
// component confidence is below threshold, OR a flagged ambiguity is
// present. It does not consider explicit caller overrides — those are
// applied by the caller via Uncertain/UncertainFlagged directly.
func NeedsReviewByPolicy[T any](a Ambiguous[T], threshold float64) bool {
	if a.Flag != FlagNone {
		return true
	}
	if a.Best.Confidence < threshold {
		return true
	}
	for _, alt := range a.Alternatives {
		if alt.Confidence < threshold {
			return true
		}
	}
	return false
}
