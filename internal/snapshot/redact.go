// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package snapshot

import "github.com/phosphorco/layered-nlp/internal/confidence"

const redactedSentinel = "<redacted>"

// sourceView is the JSON-serializable, redactable projection of a
// confidence.Source. LLM pass/verifier identifiers are non-deterministic
// across runs (fresh UUIDs per inference); redact replaces them with a
// fixed sentinel so two runs of the same chain produce byte-identical
// snapshots (spec.md §6, §8 "Diffable snapshot test").
type sourceView struct {
	Kind       string   `json:"kind"`
	RuleName   string   `json:"name,omitempty"`
	PassID     string   `json:"pass_id,omitempty"`
	VerifierID string   `json:"verifier_id,omitempty"`
	Parents    []string `json:"parents,omitempty"`
}

func buildSourceView(s confidence.Source, redact bool) sourceView {
	sv := sourceView{Kind: s.Kind.String()}
	switch s.Kind {
	case confidence.SourceRuleBased:
		sv.RuleName = s.RuleName
	case confidence.SourceLLM:
		if redact {
			sv.PassID = redactedSentinel
			sv.VerifierID = redactedSentinel
		} else {
			sv.PassID = s.PassID.String()
			sv.VerifierID = s.VerifierID.String()
		}
	case confidence.SourceDerived:
		sv.Parents = s.Parents
	case confidence.SourceManual:
		// no extra fields
	}
	return sv
}
