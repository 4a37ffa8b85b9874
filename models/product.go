package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Catalog defaults backfilled when a stored document omits the field.
const (
	DefaultRating  = 4.8
	DefaultInStock = true
)

// Product is a catalog entry, identified by its slug. The catalog is seeded
// once and read-only afterwards.
type Product struct {
	Slug        string   `bson:"slug" json:"slug"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64  `bson:"price" json:"price"`
	SizeML      int      `bson:"size_ml,omitempty" json:"size_ml,omitempty"`
	SkinType    string   `bson:"skin_type,omitempty" json:"skin_type,omitempty"`
	Ingredients []string `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Image       string   `bson:"image,omitempty" json:"image,omitempty"`
	InStock     bool     `bson:"in_stock" json:"in_stock"`
	Rating      float64  `bson:"rating" json:"rating"`
}

// ProductFromDocument maps a raw stored document into a Product. This is the
// one place loose documents become typed values; optional fields missing from
// the document get their defaults here.
func ProductFromDocument(d bson.M) Product {
	return Product{
		Slug:        docString(d, "slug"),
		Name:        docString(d, "name"),
		Description: docString(d, "description"),
		Price:       docFloat(d, "price", 0),
		SizeML:      docInt(d, "size_ml"),
		SkinType:    docString(d, "skin_type"),
		Ingredients: docStrings(d, "ingredients"),
		Image:       docString(d, "image"),
		InStock:     docBool(d, "in_stock", DefaultInStock),
		Rating:      docFloat(d, "rating", DefaultRating),
	}
}

func docString(d bson.M, key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

// docFloat tolerates the integer widths the driver may decode numbers into.
func docFloat(d bson.M, key string, def float64) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return def
}

func docInt(d bson.M, key string) int {
	switch v := d[key].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func docBool(d bson.M, key string, def bool) bool {
	if v, ok := d[key].(bool); ok {
		return v
	}
	return def
}

func docStrings(d bson.M, key string) []string {
	switch v := d[key].(type) {
	case []string:
		return v
	case bson.A:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
