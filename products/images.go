package products

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const unsplashBaseURL = "https://api.unsplash.com/search/photos"

// productImages maps known product names to real listing images.
var productImages = map[string]string{
	// Fungicides
	"dithane m-45":       "https://m.media-amazon.com/images/I/61N8ZqxQiOL._SL1500_.jpg",
	"dithane":            "https://m.media-amazon.com/images/I/61N8ZqxQiOL._SL1500_.jpg",
	"bavistin":           "https://m.media-amazon.com/images/I/61-xvN0SYHL._SL1500_.jpg",
	"blitox":             "https://m.media-amazon.com/images/I/71nZGCGzq9L._SL1500_.jpg",
	"mancozeb":           "https://m.media-amazon.com/images/I/61N8ZqxQiOL._SL1500_.jpg",
	"carbendazim":        "https://m.media-amazon.com/images/I/71XK5qN8zPL._SL1500_.jpg",
	"copper oxychloride": "https://m.media-amazon.com/images/I/71nZGCGzq9L._SL1500_.jpg",

	// Insecticides
	"confidor":     "https://m.media-amazon.com/images/I/71QxY0JKYPL._SL1500_.jpg",
	"ripcord":      "https://m.media-amazon.com/images/I/61qZpGJ8KSL._SL1500_.jpg",
	"dursban":      "https://m.media-amazon.com/images/I/71jnTqQx8fL._SL1500_.jpg",
	"imidacloprid": "https://m.media-amazon.com/images/I/71QxY0JKYPL._SL1500_.jpg",
	"chlorpyrifos": "https://m.media-amazon.com/images/I/71jnTqQx8fL._SL1500_.jpg",
	"cypermethrin": "https://m.media-amazon.com/images/I/61qZpGJ8KSL._SL1500_.jpg",

	// Fertilizers
	"npk":       "https://m.media-amazon.com/images/I/71kxMZB8xyL._SL1500_.jpg",
	"urea":      "https://m.media-amazon.com/images/I/61wRHxN5XqL._SL1500_.jpg",
	"dap":       "https://m.media-amazon.com/images/I/71WQxN5KVSL._SL1500_.jpg",
	"multiplex": "https://m.media-amazon.com/images/I/71kxMZB8xyL._SL1500_.jpg",
	"iffco":     "https://m.media-amazon.com/images/I/61wRHxN5XqL._SL1500_.jpg",
	"chambal":   "https://m.media-amazon.com/images/I/71WQxN5KVSL._SL1500_.jpg",

	// Generic categories
	"fungicide":   "https://m.media-amazon.com/images/I/61N8ZqxQiOL._SL1500_.jpg",
	"insecticide": "https://m.media-amazon.com/images/I/71QxY0JKYPL._SL1500_.jpg",
	"pesticide":   "https://m.media-amazon.com/images/I/71jnTqQx8fL._SL1500_.jpg",
	"fertilizer":  "https://m.media-amazon.com/images/I/71kxMZB8xyL._SL1500_.jpg",
}

// ImageResolver finds a display image for a product: Unsplash search when a
// key is configured, then the static table, then a generated placeholder.
type ImageResolver struct {
	UnsplashKey string
	BaseURL     string
	Client      *http.Client
}

func NewImageResolver(unsplashKey string) *ImageResolver {
	return &ImageResolver{
		UnsplashKey: unsplashKey,
		BaseURL:     unsplashBaseURL,
		Client:      &http.Client{Timeout: 5 * time.Second},
	}
}

func (r *ImageResolver) Resolve(productName string) string {
	if r.UnsplashKey == "" {
		return DefaultImage(productName)
	}

	imageURL, err := r.searchUnsplash(productName)
	if err != nil {
		log.Printf("Unsplash fetch error for %q: %v", productName, err)
		return DefaultImage(productName)
	}
	if imageURL == "" {
		return DefaultImage(productName)
	}
	return imageURL
}

type unsplashResponse struct {
	Results []struct {
		URLs struct {
			Small string `json:"small"`
		} `json:"urls"`
	} `json:"results"`
}

func (r *ImageResolver) searchUnsplash(productName string) (string, error) {
	searchQuery := productName + " agriculture pesticide bottle product"
	reqURL := fmt.Sprintf("%s?query=%s&per_page=1&orientation=squarish&client_id=%s",
		r.BaseURL, url.QueryEscape(searchQuery), r.UnsplashKey)

	resp, err := r.Client.Get(reqURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash returned status %d", resp.StatusCode)
	}

	var data unsplashResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if len(data.Results) == 0 {
		return "", nil
	}
	return data.Results[0].URLs.Small, nil
}

// DefaultImage looks the product up in the static table (direct match, then
// partial), falling back to a placeholder colored by product category.
func DefaultImage(productName string) string {
	searchName := strings.TrimSpace(strings.ToLower(productName))

	if imageURL, ok := productImages[searchName]; ok {
		return imageURL
	}
	for key, imageURL := range productImages {
		if strings.Contains(searchName, key) || strings.Contains(key, searchName) {
			return imageURL
		}
	}

	color := "4a5d23"
	if strings.Contains(searchName, "insect") {
		color = "8b0000"
	} else if strings.Contains(searchName, "fung") {
		color = "2d5016"
	}

	label := productName
	if len(label) > 15 {
		label = label[:15]
	}
	return fmt.Sprintf("https://placehold.co/200x200/%s/white?text=%s&font=roboto",
		color, url.QueryEscape(label))
}
