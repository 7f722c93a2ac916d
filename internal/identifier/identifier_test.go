// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identifier

import (
	"regexp"
	"testing"
)

var v4Shape = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNew(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if !v4Shape.MatchString(id) {
			t.Fatalf("identifier %q does not match the v4 shape", id)
		}
		if seen[id] {
			t.Fatalf("identifier %q generated twice", id)
		}
		seen[id] = true
	}
}

func TestPseudoV4(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := pseudoV4()
		if !v4Shape.MatchString(id) {
			t.Fatalf("fallback identifier %q does not match the v4 shape", id)
		}
	}
}
