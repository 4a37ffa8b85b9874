package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestProductFromDocumentBackfillsDefaults(t *testing.T) {
	// A sparse document as an older client might have written it.
	p := ProductFromDocument(bson.M{
		"slug":  "clarifying-toner",
		"name":  "Clarifying Toner",
		"price": 18.90,
	})

	assert.Equal(t, "clarifying-toner", p.Slug)
	assert.Equal(t, 18.90, p.Price)
	assert.True(t, p.InStock, "in_stock defaults to true")
	assert.Equal(t, DefaultRating, p.Rating, "rating defaults to 4.8")
	assert.Empty(t, p.Description)
	assert.Nil(t, p.Ingredients)
}

func TestProductFromDocumentKeepsStoredValues(t *testing.T) {
	p := ProductFromDocument(bson.M{
		"slug":        "post-shave-balm",
		"name":        "Post-Shave Balm",
		"description": "Rauhoittava after shave -balsami.",
		"price":       22.90,
		"size_ml":     int32(100),
		"skin_type":   "All",
		"ingredients": bson.A{"Allantoin", "Panthenol"},
		"image":       "https://example.com/balm.jpg",
		"in_stock":    false,
		"rating":      4.2,
	})

	assert.Equal(t, "post-shave-balm", p.Slug)
	assert.Equal(t, 100, p.SizeML)
	assert.Equal(t, []string{"Allantoin", "Panthenol"}, p.Ingredients)
	assert.False(t, p.InStock)
	assert.Equal(t, 4.2, p.Rating)
}

func TestProductFromDocumentTolerantNumericWidths(t *testing.T) {
	p := ProductFromDocument(bson.M{
		"slug":    "beard-conditioning-oil",
		"price":   int32(21),
		"size_ml": int64(30),
		"rating":  int64(5),
	})

	assert.Equal(t, 21.0, p.Price)
	assert.Equal(t, 30, p.SizeML)
	assert.Equal(t, 5.0, p.Rating)
}
