package geocode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateFromCoordinates(t *testing.T) {
	assert.Equal(t, "West Bengal", StateFromCoordinates(22.57, 88.36))
	assert.Equal(t, "Delhi", StateFromCoordinates(28.61, 77.21))
	assert.Equal(t, "Maharashtra", StateFromCoordinates(19.07, 72.88))
	assert.Equal(t, "Punjab", StateFromCoordinates(30.73, 76.78))
}

func TestStateFromCoordinatesNoMatch(t *testing.T) {
	assert.Equal(t, "India", StateFromCoordinates(5.0, 60.0))
	assert.Equal(t, "India", StateFromCoordinates(0, 0))
}

func TestStateFromPincode(t *testing.T) {
	assert.Equal(t, "Delhi", StateFromPincode("110001"))
	assert.Equal(t, "West Bengal", StateFromPincode("700001"))
	assert.Equal(t, "Maharashtra", StateFromPincode("411001"))
	assert.Equal(t, "Kerala", StateFromPincode("670001"))
}

func TestStateFromPincodeDefaults(t *testing.T) {
	assert.Equal(t, "Delhi", StateFromPincode(""))
	assert.Equal(t, "Delhi", StateFromPincode("9"))
	// Unmapped prefix.
	assert.Equal(t, "Delhi", StateFromPincode("990001"))
}
