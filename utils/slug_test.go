package utils

import "testing"

func TestSlugDefault(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"underscores replaced", "My _Fancy_ Product!", "my-fancy-product"},
		{"unicode chars", "Café au Lait", "cafe-au-lait"},
		{"mixed case", "MixED CaSe", "mixed-case"},
		{"numbers", "Product 2023 v2", "product-2023-v2"},
		{"special chars", "Hello@World#123", "hello-world-123"},
		{"leading trailing special", "!!Hello World!!", "hello-world"},
		{"multiple hyphens", "Hello---World", "hello-world"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
	}

	slug := NewSlug()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := slug.Generate(tc.input); got != tc.want {
				t.Fatalf("Generate(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSlugPreserveUnderscores(t *testing.T) {
	slug := NewSlug()
	slug.ReplaceUnderscores = false

	if got := slug.Generate("My _Fancy_ Product!"); got != "my_fancy_product" {
		t.Fatalf("got %q, want my_fancy_product", got)
	}
	if got := slug.Generate("A__B___C"); got != "a_b_c" {
		t.Fatalf("got %q, want a_b_c", got)
	}
}

func TestSlugMaxLength(t *testing.T) {
	slug := NewSlug()
	slug.MaxLength = 10

	// The cut can expose a trailing separator, which trim removes again.
	if got := slug.Generate("Very Long Product Name"); got != "very-long" {
		t.Fatalf("got %q, want very-long", got)
	}
}

func TestSlugMaxLengthTrimVsNoTrim(t *testing.T) {
	trimmed := NewSlug()
	trimmed.MaxLength = 10
	if got := trimmed.Generate("  Complex-Name___ "); got != "complex-na" {
		t.Fatalf("trimmed: got %q, want complex-na", got)
	}

	notrim := NewSlug()
	notrim.MaxLength = 10
	notrim.Trim = false
	if got := notrim.Generate("  Complex-Name___ "); got != "-complex-n" {
		t.Fatalf("notrim: got %q, want -complex-n", got)
	}
}
