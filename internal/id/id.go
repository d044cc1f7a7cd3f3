// Package id generates the prefixed NanoID identifiers used for all
// ShelfSpace records ("shelf-...", "item-...", "token-...").
package id

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generate creates a prefixed unique ID, e.g. "shelf-V1StGXR8_Z5jdHi6B-myT".
// The 21-character NanoID body is URL-safe and shorter than a UUID while
// keeping comparable collision resistance.
func Generate(prefix string) (string, error) {
	body, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + body, nil
}

// MustGenerate is like Generate but panics when entropy is unavailable.
// Reserved for initialization paths where failure should crash the program.
func MustGenerate(prefix string) string {
	generated, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return generated
}

// Prefix returns the prefix portion of a generated ID, or "" if the ID
// does not carry one.
func Prefix(id string) string {
	i := strings.IndexByte(id, '-')
	if i < 0 {
		return ""
	}
	return id[:i]
}
