package weather

// AirQuality carries pollutant concentrations plus the two national indices
// the API reports side by side. The index keys are hyphenated in the payload
// and cannot be derived from the field names, hence the explicit tags.
type AirQuality struct {
	CO           float64 `json:"co"`
	NO2          float64 `json:"no2"`
	O3           float64 `json:"o3"`
	SO2          float64 `json:"so2"`
	PM25         float64 `json:"pm2_5"`
	PM10         float64 `json:"pm10"`
	USEPAIndex   int     `json:"us-epa-index"`
	GBDefraIndex int     `json:"gb-defra-index"`
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type Location struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

// Current is the present-moment observation. is_day is a 0/1 flag as sent by
// the API, not a boolean.
type Current struct {
	LastUpdatedEpoch int64      `json:"last_updated_epoch"`
	LastUpdated      string     `json:"last_updated"`
	TempC            float64    `json:"temp_c"`
	TempF            float64    `json:"temp_f"`
	IsDay            int        `json:"is_day"`
	Condition        Condition  `json:"condition"`
	WindMPH          float64    `json:"wind_mph"`
	WindKPH          float64    `json:"wind_kph"`
	WindDegree       int        `json:"wind_degree"`
	WindDir          string     `json:"wind_dir"`
	PressureMB       float64    `json:"pressure_mb"`
	PressureIN       float64    `json:"pressure_in"`
	PrecipMM         float64    `json:"precip_mm"`
	PrecipIN         float64    `json:"precip_in"`
	Humidity         int        `json:"humidity"`
	Cloud            int        `json:"cloud"`
	FeelsLikeC       float64    `json:"feelslike_c"`
	FeelsLikeF       float64    `json:"feelslike_f"`
	WindChillC       float64    `json:"windchill_c"`
	WindChillF       float64    `json:"windchill_f"`
	HeatIndexC       float64    `json:"heatindex_c"`
	HeatIndexF       float64    `json:"heatindex_f"`
	DewPointC        float64    `json:"dewpoint_c"`
	DewPointF        float64    `json:"dewpoint_f"`
	VisKM            float64    `json:"vis_km"`
	VisMiles         float64    `json:"vis_miles"`
	UV               float64    `json:"uv"`
	GustMPH          float64    `json:"gust_mph"`
	GustKPH          float64    `json:"gust_kph"`
	AirQuality       AirQuality `json:"air_quality"`
	ShortRad         float64    `json:"short_rad"`
	DiffRad          float64    `json:"diff_rad"`
	DNI              float64    `json:"dni"`
	GTI              float64    `json:"gti"`
}

// Day is the aggregated daily forecast summary.
type Day struct {
	MaxTempC          float64    `json:"maxtemp_c"`
	MaxTempF          float64    `json:"maxtemp_f"`
	MinTempC          float64    `json:"mintemp_c"`
	MinTempF          float64    `json:"mintemp_f"`
	AvgTempC          float64    `json:"avgtemp_c"`
	AvgTempF          float64    `json:"avgtemp_f"`
	MaxWindMPH        float64    `json:"maxwind_mph"`
	MaxWindKPH        float64    `json:"maxwind_kph"`
	TotalPrecipMM     float64    `json:"totalprecip_mm"`
	TotalPrecipIN     float64    `json:"totalprecip_in"`
	TotalSnowCM       float64    `json:"totalsnow_cm"`
	AvgVisKM          float64    `json:"avgvis_km"`
	AvgVisMiles       float64    `json:"avgvis_miles"`
	AvgHumidity       int        `json:"avghumidity"`
	DailyWillItRain   int        `json:"daily_will_it_rain"`
	DailyChanceOfRain int        `json:"daily_chance_of_rain"`
	DailyWillItSnow   int        `json:"daily_will_it_snow"`
	DailyChanceOfSnow int        `json:"daily_chance_of_snow"`
	Condition         Condition  `json:"condition"`
	UV                float64    `json:"uv"`
	AirQuality        AirQuality `json:"air_quality"`
}

type Astro struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonPhase        string `json:"moon_phase"`
	MoonIllumination int    `json:"moon_illumination"`
	IsMoonUp         int    `json:"is_moon_up"`
	IsSunUp          int    `json:"is_sun_up"`
}

// Hour is a per-hour observation, a superset of Current's instantaneous
// fields plus snowfall and the rain/snow chance flags.
type Hour struct {
	TimeEpoch    int64      `json:"time_epoch"`
	Time         string     `json:"time"`
	TempC        float64    `json:"temp_c"`
	TempF        float64    `json:"temp_f"`
	IsDay        int        `json:"is_day"`
	Condition    Condition  `json:"condition"`
	WindMPH      float64    `json:"wind_mph"`
	WindKPH      float64    `json:"wind_kph"`
	WindDegree   int        `json:"wind_degree"`
	WindDir      string     `json:"wind_dir"`
	PressureMB   float64    `json:"pressure_mb"`
	PressureIN   float64    `json:"pressure_in"`
	PrecipMM     float64    `json:"precip_mm"`
	PrecipIN     float64    `json:"precip_in"`
	SnowCM       float64    `json:"snow_cm"`
	Humidity     int        `json:"humidity"`
	Cloud        int        `json:"cloud"`
	FeelsLikeC   float64    `json:"feelslike_c"`
	FeelsLikeF   float64    `json:"feelslike_f"`
	WindChillC   float64    `json:"windchill_c"`
	WindChillF   float64    `json:"windchill_f"`
	HeatIndexC   float64    `json:"heatindex_c"`
	HeatIndexF   float64    `json:"heatindex_f"`
	DewPointC    float64    `json:"dewpoint_c"`
	DewPointF    float64    `json:"dewpoint_f"`
	WillItRain   int        `json:"will_it_rain"`
	ChanceOfRain int        `json:"chance_of_rain"`
	WillItSnow   int        `json:"will_it_snow"`
	ChanceOfSnow int        `json:"chance_of_snow"`
	VisKM        float64    `json:"vis_km"`
	VisMiles     float64    `json:"vis_miles"`
	GustKPH      float64    `json:"gust_kph"`
	GustMPH      float64    `json:"gust_mph"`
	UV           float64    `json:"uv"`
	AirQuality   AirQuality `json:"air_quality"`
	ShortRad     float64    `json:"short_rad"`
	DiffRad      float64    `json:"diff_rad"`
	DNI          float64    `json:"dni"`
	GTI          float64    `json:"gti"`
}

type ForecastDay struct {
	Date      string `json:"date"`
	DateEpoch int64  `json:"date_epoch"`
	Day       Day    `json:"day"`
	Astro     Astro  `json:"astro"`
	Hour      []Hour `json:"hour"`
}

// Forecast preserves the payload's chronological day order.
type Forecast struct {
	Forecastday []ForecastDay `json:"forecastday"`
}

// WeatherData is the root of the forecast-with-air-quality response.
type WeatherData struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
	Forecast Forecast `json:"forecast"`
}
