// internal/app/system/textsanitize/textsanitize.go

// Package textsanitize strips markup from user-supplied free text.
//
// Hour descriptions and organization profile fields are stored and echoed
// back to browser clients as plain text; anything that looks like HTML is
// removed on the way in so stored values are always inert.
package textsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

// Clean removes all HTML from s and trims surrounding whitespace.
func Clean(s string) string {
	once.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(policy.Sanitize(s))
}
