package cronjobs

import (
	"context"
	"log"

	"go-cropsense/market"

	"github.com/robfig/cron/v3"
)

// popularStates are the regions whose market prices get warmed ahead of
// demand so chat requests usually hit the cache.
var popularStates = []string{
	"Delhi", "Maharashtra", "West Bengal", "Uttar Pradesh", "Karnataka", "Punjab",
}

// InitCronJobs schedules the market price cache warm. A no-op when the
// fetcher has no cache or no API key to refresh from.
func InitCronJobs(marketFetcher *market.Fetcher) {
	if marketFetcher.Cache == nil || marketFetcher.APIKey == "" {
		log.Println("Market cache warm disabled (no cache or API key configured)")
		return
	}

	log.Println("Starting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Warm market prices every 30 minutes.
	_, err := c.AddFunc("*/30 * * * *", func() {
		log.Println("CronJob: Market price warm running")
		for _, state := range popularStates {
			marketFetcher.Refresh(context.Background(), state)
		}
	})
	if err != nil {
		log.Println("Error scheduling market price warm:", err)
	}

	c.Start()
}
