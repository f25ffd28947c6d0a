package weather

import (
	"fmt"
	"strings"
)

// Render maps a parsed response to the ordered display lines: separator,
// location identity, current conditions, air quality, one line per forecast
// day in payload order, closing separator. It is total over any successfully
// parsed WeatherData; the table lookups fall back instead of failing. PM2.5
// and PM10 are fixed to one decimal place, every other number keeps Go's
// default formatting.
func Render(w *WeatherData) []string {
	lines := []string{
		separator(),
		fmt.Sprintf("%s (%s, %s)", w.Location.Name, w.Location.Region, w.Location.Country),
		fmt.Sprintf("Local Time: %s", w.Location.Localtime),
		"",
		fmt.Sprintf("%s | %v°C / %v°F\tUV: %v",
			w.Current.Condition.Text, w.Current.TempC, w.Current.TempF, w.Current.UV),
		"",
		fmt.Sprintf("Feels like: %v°C / %v°F\tHumidity: %d%%\tPrecip: %v mm",
			w.Current.FeelsLikeC, w.Current.FeelsLikeF, w.Current.Humidity, w.Current.PrecipMM),
		fmt.Sprintf("Wind: %s %vkph / %vmph \tDew Point: %v°C / %v°F",
			WindArrow(w.Current.WindDir), w.Current.WindKPH, w.Current.WindMPH,
			w.Current.DewPointC, w.Current.DewPointF),
		fmt.Sprintf("AQI: %s\tPM2.5: %.1f μg/m³\tPM10: %.1f μg/m³",
			EPAIndexLabel(w.Current.AirQuality.USEPAIndex),
			w.Current.AirQuality.PM25, w.Current.AirQuality.PM10),
		"",
		"▶ Forecast:",
	}

	for _, fd := range w.Forecast.Forecastday {
		lines = append(lines, fmt.Sprintf("  - %s: %v°C / %v°F, %s (Precip: %v mm, UV: %v)",
			fd.Date, fd.Day.MaxTempC, fd.Day.MaxTempF, fd.Day.Condition.Text,
			fd.Day.TotalPrecipMM, fd.Day.UV))
	}

	return append(lines, separator())
}

func separator() string {
	return "<>" + strings.Repeat("-", 70) + "<>"
}
