package advisory

import (
	"time"

	"go-cropsense/types"
)

const (
	seasonSummer = "Summer/Kharif Prep"
	seasonKharif = "Kharif (Monsoon)"
	seasonRabi   = "Rabi (Winter)"
)

var recommendations = map[string][]string{
	seasonSummer: {
		"Prepare fields for Kharif sowing",
		"Ensure irrigation systems are ready",
		"Select high-yielding seed varieties",
	},
	seasonKharif: {
		"Continue rice/cotton/soybean cultivation",
		"Manage water logging in fields",
		"Watch for pest outbreaks",
	},
	seasonRabi: {
		"Focus on wheat, mustard, gram cultivation",
		"Protect crops from cold waves",
		"Schedule irrigation carefully",
	},
}

// SeasonFor maps a calendar month to the agricultural season.
func SeasonFor(month time.Month) string {
	switch {
	case month >= time.March && month <= time.June:
		return seasonSummer
	case month >= time.July && month <= time.October:
		return seasonKharif
	default:
		return seasonRabi
	}
}

// Current returns the static advisory for the current season.
func Current(now time.Time) types.CropAdvisory {
	season := SeasonFor(now.Month())
	recs := recommendations[season]
	if recs == nil {
		recs = recommendations[seasonRabi]
	}
	return types.CropAdvisory{
		Recommendations: recs,
		Season:          season,
	}
}
