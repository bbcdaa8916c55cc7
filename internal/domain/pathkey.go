package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ComputePathKey derives the stable content-hash identity of a Path: a
// hex-encoded SHA-256 over its normalized components, joined by a
// separator that cannot appear in a CURIE or qualified predicate.
func ComputePathKey(p Path) PathKey {
	h := sha256.New()
	h.Write([]byte(strings.Join(p, "\x1f")))
	return PathKey(hex.EncodeToString(h.Sum(nil)))
}
