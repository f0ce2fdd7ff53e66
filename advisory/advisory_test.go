package advisory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonFor(t *testing.T) {
	assert.Equal(t, "Summer/Kharif Prep", SeasonFor(time.March))
	assert.Equal(t, "Summer/Kharif Prep", SeasonFor(time.June))
	assert.Equal(t, "Kharif (Monsoon)", SeasonFor(time.July))
	assert.Equal(t, "Kharif (Monsoon)", SeasonFor(time.October))
	assert.Equal(t, "Rabi (Winter)", SeasonFor(time.November))
	assert.Equal(t, "Rabi (Winter)", SeasonFor(time.February))
}

func TestCurrentReturnsSeasonRecommendations(t *testing.T) {
	advisory := Current(time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Kharif (Monsoon)", advisory.Season)
	require.NotEmpty(t, advisory.Recommendations)
	assert.Contains(t, advisory.Recommendations, "Watch for pest outbreaks")
}
