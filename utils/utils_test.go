package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helioskin-backend/models"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Purifying Face Wash":      "purifying-face-wash",
		"Ultra Protect SPF50":      "ultra-protect-spf50",
		"Post-Shave Balm":          "post-shave-balm",
		"Crème Solaire":            "creme-solaire",
		"  spaced   out  ":         "spaced-out",
		"Deep Clean Charcoal Mask": "deep-clean-charcoal-mask",
	}
	for name, want := range cases {
		assert.Equal(t, want, GenerateSlug(name), "slug for %q", name)
	}
}

func TestSeedProducts(t *testing.T) {
	products := SeedProducts()
	require.Len(t, products, 10)

	wantSlugs := []string{
		"purifying-face-wash",
		"revitalizing-moisturizer",
		"age-defense-serum",
		"energizing-eye-cream",
		"post-shave-balm",
		"deep-clean-charcoal-mask",
		"ultra-protect-spf50",
		"beard-conditioning-oil",
		"clarifying-toner",
		"nourishing-night-cream",
	}

	seen := make(map[string]bool)
	for i, p := range products {
		assert.Equal(t, wantSlugs[i], p.Slug)
		assert.False(t, seen[p.Slug], "duplicate slug %s", p.Slug)
		seen[p.Slug] = true

		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.Price, 0.0)
		assert.True(t, p.InStock)
		assert.Equal(t, models.DefaultRating, p.Rating)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 50))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("", 5))
}
