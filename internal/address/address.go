// Package address implements deterministic addressing of flashcard sets
// inside a user's folder hierarchy. A set's identifier is a pure function of
// (owner, normalized folder path, set name), so the same logical set always
// resolves to the same storage address regardless of call order or prior
// state. That property is what makes set creation idempotent.
package address

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Separator delimits folder segments inside a set address.
const Separator = "/"

// ErrInvalidAddress is returned when an owner/folder/name combination cannot
// form a usable address, for example an empty owner.
var ErrInvalidAddress = errors.New("invalid address")

// ComputeID derives the stable identifier for a flashcard set.
//
// The encoding is pinned, not incidental: the UTF-8 concatenation
// owner + folder + name is hashed with SHA-256, the digest is read as a
// base-16 integer, and the result is rendered in base 10. Any platform that
// follows the same three steps resolves the same set to the same ID.
//
// folder must already be normalized (see NormalizeFolder): empty for the
// root, otherwise ending in exactly one separator. Every string triple is
// valid input; there are no error conditions.
func ComputeID(owner, folder, name string) string {
	sum := sha256.Sum256([]byte(owner + folder + name))
	return new(big.Int).SetBytes(sum[:]).String()
}

// NormalizeFolder canonicalizes a folder path. The root folder (empty input,
// or input consisting only of separators and blanks) normalizes to the empty
// string. Any other path has empty segments dropped and ends with exactly
// one separator, ready for concatenation with a set ID.
func NormalizeFolder(folder string) string {
	segments := make([]string, 0, 4)
	for _, seg := range strings.Split(folder, Separator) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, Separator) + Separator
}

// ForRoot returns the address of the owner's hierarchy root, under which
// every folder and set of that owner lives.
func ForRoot(owner string) (string, error) {
	if strings.TrimSpace(owner) == "" {
		return "", fmt.Errorf("%w: owner is empty", ErrInvalidAddress)
	}
	return "/users/" + owner + "/flashcards", nil
}

// ForSet returns the full storage address of a set: the owner root, the
// normalized folder prefix, and the set ID. folder must already be
// normalized.
func ForSet(owner, folder, id string) (string, error) {
	root, err := ForRoot(owner)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("%w: set ID is empty", ErrInvalidAddress)
	}
	return root + Separator + folder + id, nil
}
