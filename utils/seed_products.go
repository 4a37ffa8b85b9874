package utils

import "helioskin-backend/models"

// SeedProducts is the fixed ten-product catalog inserted when the product
// collection is empty. Slugs are derived from the names so the two can never
// drift apart.
func SeedProducts() []models.Product {
	products := []models.Product{
		{
			Name:        "Purifying Face Wash",
			Description: "Sulfate-free daily cleanser for men.",
			Price:       19.90,
			SizeML:      150,
			SkinType:    "All",
			Ingredients: []string{"Aloe Vera", "Niacinamide"},
			Image:       "https://images.unsplash.com/photo-1608248597279-d8b8746e67d1?w=800&q=80",
		},
		{
			Name:        "Revitalizing Moisturizer",
			Description: "Kevyt kosteusvoide päivittäiseen käyttöön.",
			Price:       29.90,
			SizeML:      75,
			SkinType:    "Normal/Oily",
			Ingredients: []string{"Hyaluronic Acid", "Vitamin E"},
			Image:       "https://images.unsplash.com/photo-1609840114035-10affa6b8a12?w=800&q=80",
		},
		{
			Name:        "Age Defense Serum",
			Description: "Peptidipitoinen ikääntymistä ehkäisevä seerumi.",
			Price:       49.90,
			SizeML:      30,
			SkinType:    "All",
			Ingredients: []string{"Peptides", "Retinal"},
			Image:       "https://images.unsplash.com/photo-1585238342028-4bbc5b9b3a3b?w=800&q=80",
		},
		{
			Name:        "Energizing Eye Cream",
			Description: "Virkistävä silmänympärysvoide kofeiinilla.",
			Price:       24.90,
			SizeML:      15,
			SkinType:    "All",
			Ingredients: []string{"Caffeine", "Niacinamide"},
			Image:       "https://images.unsplash.com/photo-1598440947619-2c35fc9aa908?w=800&q=80",
		},
		{
			Name:        "Post-Shave Balm",
			Description: "Rauhoittava after shave -balsami.",
			Price:       22.90,
			SizeML:      100,
			SkinType:    "All",
			Ingredients: []string{"Allantoin", "Panthenol"},
			Image:       "https://images.unsplash.com/photo-1585386959984-a4155223168f?w=800&q=80",
		},
		{
			Name:        "Deep Clean Charcoal Mask",
			Description: "Syväpuhdistava hiilinaamio.",
			Price:       27.90,
			SizeML:      75,
			SkinType:    "Oily/Combination",
			Ingredients: []string{"Charcoal", "Kaolin"},
			Image:       "https://images.unsplash.com/photo-1585238342164-1a7f6eb3b2db?w=800&q=80",
		},
		{
			Name:        "Ultra Protect SPF50",
			Description: "Laajakirjoinen mineraaliaurinkosuoja.",
			Price:       32.90,
			SizeML:      50,
			SkinType:    "All",
			Ingredients: []string{"Zinc Oxide", "Vitamin C"},
			Image:       "https://images.unsplash.com/photo-1619784691579-94b2071ca92b?w=800&q=80",
		},
		{
			Name:        "Beard Conditioning Oil",
			Description: "Partaöljy pehmeyttä ja kiiltoa varten.",
			Price:       21.90,
			SizeML:      30,
			SkinType:    "All",
			Ingredients: []string{"Argan Oil", "Jojoba Oil"},
			Image:       "https://images.unsplash.com/photo-1595152452543-e5fc28ebc2b8?w=800&q=80",
		},
		{
			Name:        "Clarifying Toner",
			Description: "Ihoa tasapainottava BHA-toner.",
			Price:       18.90,
			SizeML:      200,
			SkinType:    "Oily/Acne-prone",
			Ingredients: []string{"Salicylic Acid", "Green Tea"},
			Image:       "https://images.unsplash.com/photo-1611930022073-b7a4ba5fcccd?w=800&q=80",
		},
		{
			Name:        "Nourishing Night Cream",
			Description: "Ravitseva yövoide palautumiseen.",
			Price:       34.90,
			SizeML:      50,
			SkinType:    "Dry/Normal",
			Ingredients: []string{"Ceramides", "Squalane"},
			Image:       "https://images.unsplash.com/photo-1585238342028-4bbc5b9b3a3b?w=800&q=80",
		},
	}

	for i := range products {
		products[i].Slug = GenerateSlug(products[i].Name)
		products[i].InStock = models.DefaultInStock
		products[i].Rating = models.DefaultRating
	}
	return products
}
