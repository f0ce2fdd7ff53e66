package products

import (
	"fmt"
	"math/rand"
	"net/url"
	"sort"

	"go-cropsense/types"
)

const maxProductsPerTreatment = 3

var sellers = []string{"AgriStore India", "Farm Supply Co", "KrishiDukan"}

// PriceSource supplies the mock commercial fields attached to catalog
// entries. Injectable so tests can assert exact values instead of ranges.
type PriceSource interface {
	PriceIn(min, max int) int
	Rating() string
	InStock() bool
}

// randomPriceSource is the production implementation: range-bounded random
// price, rating between 3.5 and 5.0, roughly 85% in-stock.
type randomPriceSource struct{}

func NewRandomPriceSource() PriceSource {
	return randomPriceSource{}
}

func (randomPriceSource) PriceIn(min, max int) int {
	if max <= min {
		return min
	}
	return rand.Intn(max-min) + min
}

func (randomPriceSource) Rating() string {
	return fmt.Sprintf("%.1f", rand.Float64()*1.5+3.5)
}

func (randomPriceSource) InStock() bool {
	return rand.Float64() > 0.15
}

type Enricher struct {
	Images *ImageResolver
	Prices PriceSource
}

func NewEnricher(unsplashKey string) *Enricher {
	return &Enricher{
		Images: NewImageResolver(unsplashKey),
		Prices: NewRandomPriceSource(),
	}
}

// Enrich attaches up to three candidate products to each treatment, sorted by
// descending price so the highest value options surface first. Price, rating
// and stock are mock fields and not stable across calls.
func (e *Enricher) Enrich(treatments []types.Treatment) []types.Treatment {
	enriched := make([]types.Treatment, 0, len(treatments))
	for _, treatment := range treatments {
		term := treatment.SearchTerm
		if term == "" {
			term = treatment.Name
		}
		treatment.Products = e.Search(term)
		enriched = append(enriched, treatment)
	}
	return enriched
}

// Search builds the candidate product list for one treatment search term.
func (e *Enricher) Search(term string) []types.Product {
	entries := CatalogFor(Categorize(term))

	productList := make([]types.Product, 0, len(entries))
	for i, entry := range entries {
		if i >= maxProductsPerTreatment {
			break
		}
		fullName := entry.Brand + " " + entry.Base
		productList = append(productList, types.Product{
			Name:     fmt.Sprintf("%s (%s)", entry.Brand, entry.Base),
			Price:    e.Prices.PriceIn(entry.MinPrice, entry.MaxPrice),
			Currency: "INR",
			Image:    e.Images.Resolve(fullName),
			Link:     "https://www.amazon.in/s?k=" + url.QueryEscape(fullName),
			Rating:   e.Prices.Rating(),
			InStock:  e.Prices.InStock(),
		})
	}

	sort.Slice(productList, func(i, j int) bool {
		return productList[i].Price > productList[j].Price
	})

	// Sellers rotate in display order, so assign after sorting.
	for i := range productList {
		productList[i].Seller = sellers[i%len(sellers)]
	}
	return productList
}
