package catalog

// SeedDemo loads a small fixture catalog into a memory repo. Used when the
// server runs without a database and by tests that need a populated catalog.
func SeedDemo(repo *MemoryRepo) {
	for _, p := range demoProducts() {
		repo.Add(p)
	}
}

func demoProducts() []Product {
	return []Product{
		{Name: "Gentle Foaming Cleanser", Brand: "CeraVe", Type: CategoryCleanser, Safety: 88, Oily: 1, Sensitive: 1, AcneFighting: 1},
		{Name: "Hydrating Cream Cleanser", Brand: "La Roche-Posay", Type: CategoryCleanser, Safety: 92, Dry: 1, Sensitive: 1},
		{Name: "Salicylic Acid Wash", Brand: "Paula's Choice", Type: CategoryCleanser, Safety: 74, Oily: 1, AcneFighting: 1, Comedogenic: 0},
		{Name: "Charcoal Deep Clean", Brand: "Biore", Type: CategoryCleanser, Safety: 61, Oily: 1, Comedogenic: 1},
		{Name: "Witch Hazel Toner", Brand: "Thayers", Type: CategoryToner, Safety: 79, Oily: 1, AcneFighting: 1},
		{Name: "Rose Water Mist", Brand: "Heritage Store", Type: CategoryToner, Safety: 85, Dry: 1, Sensitive: 1, Brightening: 1},
		{Name: "Exfoliating BHA Toner", Brand: "COSRX", Type: CategoryToner, Safety: 68, Oily: 1, AcneFighting: 1},
		{Name: "Niacinamide Serum", Brand: "The Ordinary", Type: CategorySerum, Safety: 81, Oily: 1, AcneFighting: 1, Brightening: 1},
		{Name: "Vitamin C Brightening Serum", Brand: "Timeless", Type: CategorySerum, Safety: 77, Dry: 1, Brightening: 1, AntiAging: 1},
		{Name: "Retinol Night Serum", Brand: "RoC", Type: CategorySerum, Safety: 64, Dry: 1, AntiAging: 1},
		{Name: "Hyaluronic Acid Serum", Brand: "Neutrogena", Type: CategorySerum, Safety: 90, Dry: 1, Sensitive: 1},
		{Name: "Oil-Free Gel Moisturizer", Brand: "Neutrogena", Type: CategoryMoisturizer, Safety: 83, Oily: 1, AcneFighting: 1},
		{Name: "Rich Repair Cream", Brand: "First Aid Beauty", Type: CategoryMoisturizer, Safety: 87, Dry: 1, Sensitive: 1, AntiAging: 1},
		{Name: "Cocoa Butter Cream", Brand: "Palmer's", Type: CategoryMoisturizer, Safety: 72, Dry: 1, Comedogenic: 1},
		{Name: "Mineral SPF 50", Brand: "EltaMD", Type: CategorySunscreen, Safety: 89, Sensitive: 1, UV: 1},
		{Name: "Clear Skin SPF 46", Brand: "EltaMD", Type: CategorySunscreen, Safety: 84, Oily: 1, AcneFighting: 1, UV: 1},
		{Name: "Anti-Aging Day SPF 30", Brand: "Olay", Type: CategorySunscreen, Safety: 70, Dry: 1, AntiAging: 1, UV: 1},
	}
}
