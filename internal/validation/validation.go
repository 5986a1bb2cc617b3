package validation

import (
	"errors"
	"strings"
)

// ErrMissingRecipient is returned when neither the request nor the
// configuration supplies a recipient.
var ErrMissingRecipient = errors.New("missing recipient")

// NormalizeText trims surrounding whitespace. The second return value is
// false when nothing is left, so blank input reads the same as absent input.
func NormalizeText(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// ResolveRecipient picks the recipient for a request. A non-blank queryID
// wins over the configured default.
func ResolveRecipient(queryID, defaultID string) (string, error) {
	if id, ok := NormalizeText(queryID); ok {
		return id, nil
	}
	if id, ok := NormalizeText(defaultID); ok {
		return id, nil
	}
	return "", ErrMissingRecipient
}
