// internal/app/system/normalize/normalize.go

// Package normalize cleans user-supplied strings before they reach
// validation or storage. Free-text fields (title, description, location)
// are run through a strict bluemonday policy so stored values carry no
// markup at all.
package normalize

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text strips any markup from a free-text field and trims whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Name trims whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Sport trims and strips markup from a sport type value.
func Sport(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// QueryParam trims a raw query or form value.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Fold case/diacritic-folds a string for matching and storage of
// *_ci fields.
func Fold(s string) string {
	return text.Fold(strings.TrimSpace(s))
}
