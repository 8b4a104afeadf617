// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package stdlib provides the file-existence check cmd/resolve uses to
// validate its input path before reading it.
package stdlib
