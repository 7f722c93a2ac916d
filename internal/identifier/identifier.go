// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package identifier generates chatroom identifiers. They are primary keys,
// not secrets: uniqueness matters, unpredictability does not.
package identifier

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// New returns a v4-shaped UUID string. It prefers the platform entropy
// source and degrades to a pseudo-random construction with the same lexical
// shape when that source is unavailable.
func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return pseudoV4()
	}
	return id.String()
}

// pseudoV4 builds the xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx layout by hand:
// version nibble fixed to 4, variant nibble in {8, 9, a, b}.
func pseudoV4() string {
	var b [16]byte
	for i := range b {
		b[i] = byte(rand.Uint32N(256))
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80

	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
