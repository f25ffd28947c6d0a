package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindArrowCompassRose(t *testing.T) {
	expected := map[string]string{
		"N": "⬆", "NNE": "↗", "NE": "↗", "ENE": "➡",
		"E": "➡", "ESE": "↘", "SE": "↘", "SSE": "⬇",
		"S": "⬇", "SSW": "↙", "SW": "↙", "WSW": "⬅",
		"W": "⬅", "WNW": "↖", "NW": "↖", "NNW": "⬆",
	}

	assert.Len(t, windArrows, 16)
	for dir, arrow := range expected {
		assert.Equal(t, arrow, WindArrow(dir), "direction %s", dir)
	}
}

func TestWindArrowFallback(t *testing.T) {
	for _, dir := range []string{"", "XXX", "n", "NORTH", "NNE ", "❓"} {
		assert.Equal(t, "❓", WindArrow(dir), "input %q", dir)
	}
}

func TestEPAIndexLabels(t *testing.T) {
	expected := map[int]string{
		1: "Good",
		2: "Moderate",
		3: "Unhealthy for sensitive group",
		4: "Unhealthy",
		5: "Very Unhealthy",
		6: "Hazardous",
	}

	assert.Len(t, epaIndexLabels, 6)
	for index, label := range expected {
		assert.Equal(t, label, EPAIndexLabel(index), "index %d", index)
	}
}

func TestEPAIndexLabelFallback(t *testing.T) {
	// 10 covers a UK DEFRA value mistakenly passed through.
	for _, index := range []int{-1, 0, 7, 10, 100} {
		assert.Equal(t, "Unknown", EPAIndexLabel(index), "index %d", index)
	}
}
