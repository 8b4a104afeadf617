// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"reflect"

	"github.com/phosphorco/layered-nlp/cerrs"
)

// Config holds the policy knobs the resolver core treats as conventions,
// not protocol (spec.md §9 Open Questions). In a future version this could
// be loaded per invocation from a shared policy service.
type Config struct {
	Confidence ConfidenceCfg_t `json:"Confidence"`
	Review     ReviewCfg_t     `json:"Review"`
	Snapshot   SnapshotCfg_t   `json:"Snapshot"`
	DebugFlags DebugFlags_t    `json:"DebugFlags"`
}

// ConfidenceCfg_t controls compose_confidence (spec.md §4.7/§8).
type ConfidenceCfg_t struct {
	// Floor is the lower bound compose_confidence never drops below.
	Floor float64 `json:"Floor,omitempty"`
}

// ReviewCfg_t controls ReviewableResult.needs_review (spec.md §4.7).
type ReviewCfg_t struct {
	// Threshold is the review threshold (default 0.6). It is loaded but not
	// read by the reference chain; confidence.NeedsReviewByPolicy takes its
	// threshold as an argument.
	Threshold float64 `json:"Threshold,omitempty"`
}

// SnapshotCfg_t controls snapshot serialization (spec.md §6).
type SnapshotCfg_t struct {
	Redact bool `json:"Redact,omitempty"`
}

type DebugFlags_t struct {
	LogFile     bool `json:"LogFile,omitempty"`
	LogTime     bool `json:"LogTime,omitempty"`
	Resolvers   bool `json:"Resolvers,omitempty"`
	SpanIndex   bool `json:"SpanIndex,omitempty"`
	Tokenizer   bool `json:"Tokenizer,omitempty"`
}

const (
	ErrIsDirectory = cerrs.Error("is directory")
	ErrIsNotAFile  = cerrs.Error("is not a file")
)

// Default returns the built-in policy: the spec's 0.1 confidence floor,
// the spec's 0.6 review threshold, and no redaction.
func Default() *Config {
	return &Config{
		Confidence: ConfidenceCfg_t{Floor: 0.1},
		Review:     ReviewCfg_t{Threshold: 0.6},
		Snapshot:   SnapshotCfg_t{Redact: false},
	}
}

// Load reads a JSON configuration file, merging any explicitly set fields
// over the defaults. A missing file is not an error; it just means the
// caller gets Default().
func Load(name string, debug bool) (*Config, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", name)
	}
	cfg := Default()
	if sb, err := os.Stat(name); errors.Is(err, os.ErrNotExist) || os.IsNotExist(err) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if sb.Mode().IsDir() {
		return cfg, ErrIsDirectory
	} else if !sb.Mode().IsRegular() {
		return cfg, ErrIsNotAFile
	}

	var tmp Config
	if data, err := os.ReadFile(name); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err = json.Unmarshal(data, &tmp); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		} else {
			log.Printf("[config] %q: loaded %s\n", name, string(data))
		}
	}

	// copy over every value from tmp to config that isn't the default (zero) value
	copyNonZeroFields(&tmp, cfg)

	return cfg, nil
}

// copyNonZeroFields recursively copies non-zero fields from src to dst using reflection
func copyNonZeroFields(src, dst interface{}) {
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)

	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if dstVal.Kind() == reflect.Ptr {
		dstVal = dstVal.Elem()
	}

	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		dstField := dstVal.Field(i)

		if !srcField.CanInterface() || !dstField.CanSet() {
			continue
		}
		if srcField.IsZero() {
			continue
		}

		switch srcField.Kind() {
		case reflect.Struct:
			copyNonZeroFields(srcField.Interface(), dstField.Addr().Interface())
		default:
			dstField.Set(srcField)
		}
	}
}
