package products

import "strings"

type Category string

const (
	Fungicide   Category = "fungicide"
	Insecticide Category = "insecticide"
	Fertilizer  Category = "fertilizer"
)

// CatalogEntry is a brand/compound pair with its typical retail price range
// in INR.
type CatalogEntry struct {
	Base     string
	Brand    string
	MinPrice int
	MaxPrice int
}

var catalog = map[Category][]CatalogEntry{
	Fungicide: {
		{Base: "Mancozeb", Brand: "Dithane M-45", MinPrice: 300, MaxPrice: 500},
		{Base: "Carbendazim", Brand: "Bavistin", MinPrice: 200, MaxPrice: 400},
		{Base: "Copper Oxychloride", Brand: "Blitox", MinPrice: 150, MaxPrice: 300},
	},
	Insecticide: {
		{Base: "Chlorpyrifos", Brand: "Dursban", MinPrice: 400, MaxPrice: 600},
		{Base: "Imidacloprid", Brand: "Confidor", MinPrice: 350, MaxPrice: 550},
		{Base: "Cypermethrin", Brand: "Ripcord", MinPrice: 250, MaxPrice: 450},
	},
	Fertilizer: {
		{Base: "NPK 19:19:19", Brand: "Multiplex", MinPrice: 500, MaxPrice: 800},
		{Base: "Urea", Brand: "IFFCO Urea", MinPrice: 300, MaxPrice: 500},
		{Base: "DAP", Brand: "Chambal DAP", MinPrice: 600, MaxPrice: 900},
	},
}

// Categorize classifies a treatment search term by keyword. First match wins;
// anything unrecognized is treated as a fungicide.
func Categorize(term string) Category {
	lower := strings.ToLower(term)
	if strings.Contains(lower, "insect") || strings.Contains(lower, "pest") {
		return Insecticide
	}
	if strings.Contains(lower, "fertil") || strings.Contains(lower, "nutrient") {
		return Fertilizer
	}
	return Fungicide
}

// CatalogFor returns the static catalog entries for a category.
func CatalogFor(category Category) []CatalogEntry {
	if entries, ok := catalog[category]; ok {
		return entries
	}
	return catalog[Fungicide]
}
