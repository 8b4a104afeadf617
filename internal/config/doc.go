// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package config manages JSON configuration loading for the resolver core.
// It holds the policy knobs spec.md calls out as conventions rather than
// protocol — the confidence-composition floor, the needs-review threshold,
// and the snapshot redaction flag — plus debug flags, which are loaded but
// not read by any package. Configuration is loaded from the JSON file named
// by the caller (cmd/resolve's --config flag); a missing file yields the
// defaults.
package config
