// Package sanitizer strips markup from untrusted form input before
// validation and storage.
//
// CleanText is idempotent and never returns text containing a literal
// angle bracket. Tags and attributes are removed, inner text is kept,
// script and style bodies are dropped entirely.
package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// Sanitizer holds one markup-stripping policy shared across requests.
// bluemonday policies are safe for concurrent use once built, so a single
// instance is constructed at startup and passed by reference.
type Sanitizer struct {
	policy   *bluemonday.Policy
	pipeline Pipeline
}

func New() *Sanitizer {
	s := &Sanitizer{
		policy: bluemonday.StrictPolicy(),
	}
	s.pipeline = Pipeline{
		s.stripMarkup,
		strings.TrimSpace,
	}
	return s
}

// CleanText removes all tags and attributes from raw, keeping text
// content, and trims surrounding whitespace. Empty input stays empty.
func (s *Sanitizer) CleanText(raw string) string {
	if raw == "" {
		return ""
	}
	return s.pipeline.Apply(raw)
}

func (s *Sanitizer) stripMarkup(in string) string {
	return s.policy.Sanitize(in)
}
