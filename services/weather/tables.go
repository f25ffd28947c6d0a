package weather

const (
	// fallbackArrow is returned for any wind direction outside the compass
	// table; a conformant payload never needs it.
	fallbackArrow = "❓"

	// unknownAQILabel covers indices outside the US EPA 1-6 scale, including
	// the UK DEFRA index when mistakenly passed through.
	unknownAQILabel = "Unknown"
)

// windArrows maps the 16 compass abbreviations to directional glyphs.
var windArrows = map[string]string{
	"N":   "⬆",
	"NNE": "↗",
	"NE":  "↗",
	"ENE": "➡",
	"E":   "➡",
	"ESE": "↘",
	"SE":  "↘",
	"SSE": "⬇",
	"S":   "⬇",
	"SSW": "↙",
	"SW":  "↙",
	"WSW": "⬅",
	"W":   "⬅",
	"WNW": "↖",
	"NW":  "↖",
	"NNW": "⬆",
}

// epaIndexLabels maps the US EPA Air Quality Index to severity labels.
var epaIndexLabels = map[int]string{
	1: "Good",
	2: "Moderate",
	3: "Unhealthy for sensitive group",
	4: "Unhealthy",
	5: "Very Unhealthy",
	6: "Hazardous",
}

// WindArrow returns the glyph for a compass abbreviation, or the fallback
// glyph for anything outside the 16-entry table.
func WindArrow(dir string) string {
	if arrow, ok := windArrows[dir]; ok {
		return arrow
	}
	return fallbackArrow
}

// EPAIndexLabel returns the severity label for a US EPA index, or "Unknown"
// outside the 1-6 scale.
func EPAIndexLabel(index int) string {
	if label, ok := epaIndexLabels[index]; ok {
		return label
	}
	return unknownAQILabel
}
