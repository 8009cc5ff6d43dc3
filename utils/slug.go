// Package utils holds small helpers with no domain knowledge.
package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Anything that is not a letter, number or underscore.
	reNonAlnum = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
	// Anything that is not a letter or number, underscores included.
	reAllNonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reHyphens     = regexp.MustCompile(`-+`)
	reUnderscores = regexp.MustCompile(`_+`)

	// Decompose, strip combining marks, recompose: "Café" -> "Cafe".
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slug generates URL-safe slugs. The zero value is not useful; use NewSlug
// for the default configuration.
type Slug struct {
	Lowercase          bool
	ReplaceUnderscores bool
	Trim               bool
	// MaxLength caps the slug's rune count. Zero means unlimited.
	MaxLength int
}

func NewSlug() Slug {
	return Slug{Lowercase: true, ReplaceUnderscores: true, Trim: true}
}

// Generate turns input into a slug: transliterate to ASCII-ish, replace
// special characters with hyphens, collapse repeats, trim, lowercase, cap
// length. " Café Zelda 2.0: Special_Edition! " becomes
// "cafe-zelda-2-0-special-edition" with the default configuration.
func (s Slug) Generate(input string) string {
	slug, _, err := transform.String(deaccent, input)
	if err != nil {
		slug = input
	}

	if s.ReplaceUnderscores {
		slug = reAllNonAlnum.ReplaceAllString(slug, "-")
	} else {
		// Fold spaces around underscores into the underscore first, then
		// replace the remaining special characters and collapse repeats.
		slug = strings.ReplaceAll(slug, " _ ", "_")
		slug = strings.ReplaceAll(slug, " _", "_")
		slug = strings.ReplaceAll(slug, "_ ", "_")
		slug = reNonAlnum.ReplaceAllString(slug, "-")
		slug = reUnderscores.ReplaceAllString(slug, "_")
	}

	slug = reHyphens.ReplaceAllString(slug, "-")

	if s.Trim {
		slug = s.trimEdges(slug)
	}

	if s.Lowercase {
		slug = strings.ToLower(slug)
	}

	if s.MaxLength > 0 {
		if r := []rune(slug); len(r) > s.MaxLength {
			slug = string(r[:s.MaxLength])
		}
	}

	// Cutting can leave a trailing separator behind.
	if s.Trim {
		slug = s.trimEdges(slug)
	}

	return slug
}

func (s Slug) trimEdges(slug string) string {
	slug = strings.Trim(slug, "-")
	if !s.ReplaceUnderscores {
		slug = strings.Trim(slug, "_")
	}
	return slug
}
