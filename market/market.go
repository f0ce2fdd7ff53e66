package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-cropsense/types"

	"github.com/redis/go-redis/v9"
)

const (
	defaultBaseURL = "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070"

	maxPrices = 5
	cacheTTL  = 30 * time.Minute

	sourceLive      = "AGMARKNET (Live)"
	sourceEstimated = "Estimated"
)

// errNoRecords means the API answered but had no price data for the state.
// Treated like any other live failure: estimated fallback, never cached.
var errNoRecords = errors.New("no market records for state")

type Fetcher struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
	Cache   *redis.Client
}

func NewFetcher(apiKey string, cache *redis.Client) *Fetcher {
	return &Fetcher{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: 8 * time.Second},
		Cache:   cache,
	}
}

type agmarknetRecord struct {
	Commodity  string `json:"commodity"`
	Market     string `json:"market"`
	ModalPrice string `json:"modal_price"`
	MinPrice   string `json:"min_price"`
	MaxPrice   string `json:"max_price"`
}

type agmarknetResponse struct {
	Records []agmarknetRecord `json:"records"`
}

// Fetch returns regional commodity prices for a state. Any failure (missing
// key, unreachable API, zero records) resolves to the estimated fallback list;
// it never returns an error.
func (f *Fetcher) Fetch(ctx context.Context, state string) types.MarketReport {
	if state == "" {
		state = "Delhi"
	}

	if cached, ok := f.fromCache(ctx, state); ok {
		return cached
	}

	if f.APIKey == "" {
		return EstimatedReport(state)
	}

	report, err := f.fetchLive(ctx, state)
	if err != nil {
		log.Printf("Market fetch for %s failed: %v", state, err)
		return EstimatedReport(state)
	}

	f.toCache(ctx, state, report)
	return report
}

func (f *Fetcher) fetchLive(ctx context.Context, state string) (types.MarketReport, error) {
	reqURL := fmt.Sprintf("%s?api-key=%s&format=json&filters[state]=%s&limit=10",
		f.BaseURL, f.APIKey, url.QueryEscape(state))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return types.MarketReport{}, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return types.MarketReport{}, fmt.Errorf("failed to call market API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.MarketReport{}, fmt.Errorf("market API returned status %d", resp.StatusCode)
	}

	var data agmarknetResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return types.MarketReport{}, fmt.Errorf("failed to parse market response: %w", err)
	}

	// Deduplicate by commodity name, first occurrence wins, capped at 5.
	seen := make(map[string]bool)
	var prices []types.MarketPrice
	for _, record := range data.Records {
		if record.Commodity == "" || record.ModalPrice == "" || seen[record.Commodity] {
			continue
		}
		seen[record.Commodity] = true

		market := record.Market
		if market == "" {
			market = "Local"
		}
		prices = append(prices, types.MarketPrice{
			Crop:   record.Commodity,
			Price:  record.ModalPrice,
			Unit:   "quintal",
			Change: ClassifyPriceChange(record.ModalPrice, record.MinPrice, record.MaxPrice),
			Market: market,
		})
		if len(prices) >= maxPrices {
			break
		}
	}

	if len(prices) == 0 {
		return types.MarketReport{}, errNoRecords
	}

	return types.MarketReport{
		Prices:      prices,
		LastUpdated: time.Now().Format(time.RFC3339),
		Source:      sourceLive,
		State:       state,
	}, nil
}

// ClassifyPriceChange derives the change indicator from the modal price's
// deviation against the (min+max)/2 average. Strictly above +5% is up,
// strictly below -5% is down; exactly ±5% counts as stable.
func ClassifyPriceChange(modalStr, minStr, maxStr string) string {
	modal, err1 := strconv.ParseFloat(modalStr, 64)
	min, err2 := strconv.ParseFloat(minStr, 64)
	max, err3 := strconv.ParseFloat(maxStr, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return "→ Stable"
	}

	avg := (min + max) / 2
	if avg == 0 {
		return "→ Stable"
	}

	diff := ((modal - avg) / avg) * 100
	if diff > 5 {
		return fmt.Sprintf("↑ +%d%%", int(math.Round(diff)))
	}
	if diff < -5 {
		return fmt.Sprintf("↓ %d%%", int(math.Round(diff)))
	}
	return "→ Stable"
}

// EstimatedReport is the fixed fallback used whenever live data is missing.
func EstimatedReport(state string) types.MarketReport {
	return types.MarketReport{
		Prices: []types.MarketPrice{
			{Crop: "Rice", Price: "2100", Unit: "quintal", Change: "→ Estimated"},
			{Crop: "Wheat", Price: "2450", Unit: "quintal", Change: "→ Estimated"},
			{Crop: "Potato", Price: "1200", Unit: "quintal", Change: "→ Estimated"},
		},
		LastUpdated: time.Now().Format(time.RFC3339),
		Source:      sourceEstimated,
		State:       state,
	}
}

func cacheKey(state string) string {
	return "market:" + state
}

func (f *Fetcher) fromCache(ctx context.Context, state string) (types.MarketReport, bool) {
	if f.Cache == nil {
		return types.MarketReport{}, false
	}
	raw, err := f.Cache.Get(ctx, cacheKey(state)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Market cache read failed for %s: %v", state, err)
		}
		return types.MarketReport{}, false
	}
	var report types.MarketReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return types.MarketReport{}, false
	}
	return report, true
}

func (f *Fetcher) toCache(ctx context.Context, state string, report types.MarketReport) {
	if f.Cache == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := f.Cache.Set(ctx, cacheKey(state), raw, cacheTTL).Err(); err != nil {
		log.Printf("Market cache write failed for %s: %v", state, err)
	}
}

// Refresh fetches live prices for a state and stores them in the cache,
// bypassing any cached value. Used by the background warm job.
func (f *Fetcher) Refresh(ctx context.Context, state string) {
	if f.APIKey == "" || f.Cache == nil {
		return
	}
	report, err := f.fetchLive(ctx, state)
	if err != nil {
		log.Printf("Market refresh for %s failed: %v", state, err)
		return
	}
	f.toCache(ctx, state, report)
}
