package products

import (
	"sort"
	"strings"
	"testing"

	"go-cropsense/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedPriceSource makes enrichment deterministic for assertions.
type fixedPriceSource struct {
	price   int
	usePeak bool
}

func (f fixedPriceSource) PriceIn(min, max int) int {
	if f.usePeak {
		return max
	}
	if f.price != 0 {
		return f.price
	}
	return min
}

func (f fixedPriceSource) Rating() string { return "4.2" }
func (f fixedPriceSource) InStock() bool  { return true }

func newTestEnricher(src PriceSource) *Enricher {
	return &Enricher{
		Images: NewImageResolver(""), // no Unsplash key: static images only
		Prices: src,
	}
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, Insecticide, Categorize("insect killer spray"))
	assert.Equal(t, Insecticide, Categorize("Pest Control"))
	assert.Equal(t, Fertilizer, Categorize("NPK fertilizer"))
	assert.Equal(t, Fertilizer, Categorize("micro nutrient mix"))
	assert.Equal(t, Fungicide, Categorize("copper fungicide"))
	// Explicit default: anything unrecognized is a fungicide.
	assert.Equal(t, Fungicide, Categorize("something else entirely"))
}

func TestSearchShapeAndOrdering(t *testing.T) {
	e := newTestEnricher(fixedPriceSource{usePeak: true})

	productList := e.Search("insecticide for aphids")
	require.LessOrEqual(t, len(productList), 3)
	require.NotEmpty(t, productList)

	assert.True(t, sort.SliceIsSorted(productList, func(i, j int) bool {
		return productList[i].Price > productList[j].Price
	}), "products must be sorted by descending price")

	for _, p := range productList {
		assert.Equal(t, "INR", p.Currency)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Image)
		assert.Contains(t, p.Link, "amazon.in")
		assert.Equal(t, "4.2", p.Rating)
		assert.True(t, p.InStock)
	}

	// Insecticide catalog peaks: Dursban 600, Confidor 550, Ripcord 450.
	assert.Equal(t, 600, productList[0].Price)
	assert.Contains(t, productList[0].Name, "Dursban")

	// Sellers rotate in the sorted display order.
	require.Len(t, productList, 3)
	assert.Equal(t, "AgriStore India", productList[0].Seller)
	assert.Equal(t, "Farm Supply Co", productList[1].Seller)
	assert.Equal(t, "KrishiDukan", productList[2].Seller)
}

func TestEnrichAttachesProductsPerTreatment(t *testing.T) {
	e := newTestEnricher(fixedPriceSource{price: 100})

	treatments := e.Enrich([]types.Treatment{
		{Name: "Spray fungicide", SearchTerm: "mancozeb fungicide"},
		{Name: "Apply fertilizer", SearchTerm: ""},
	})
	require.Len(t, treatments, 2)
	for _, treatment := range treatments {
		assert.LessOrEqual(t, len(treatment.Products), 3)
		assert.NotEmpty(t, treatment.Products)
	}
}

func TestRandomPriceSourceBounds(t *testing.T) {
	src := NewRandomPriceSource()
	for i := 0; i < 100; i++ {
		price := src.PriceIn(300, 500)
		assert.GreaterOrEqual(t, price, 300)
		assert.Less(t, price, 500)
	}
}

func TestDefaultImageDirectMatch(t *testing.T) {
	assert.Equal(t,
		"https://m.media-amazon.com/images/I/61-xvN0SYHL._SL1500_.jpg",
		DefaultImage("Bavistin"))
}

func TestDefaultImagePartialMatch(t *testing.T) {
	// "Dithane M-45 Mancozeb" contains the known key "dithane".
	assert.Equal(t,
		"https://m.media-amazon.com/images/I/61N8ZqxQiOL._SL1500_.jpg",
		DefaultImage("Dithane M-45 Mancozeb"))
}

func TestDefaultImagePlaceholderColors(t *testing.T) {
	img := DefaultImage("zzz insect repellent xyz")
	if assert.Contains(t, img, "placehold.co") {
		assert.Contains(t, img, "8b0000")
	}

	img = DefaultImage("unknown product xyz")
	assert.True(t, strings.Contains(img, "placehold.co"))
	assert.Contains(t, img, "4a5d23")
}
