package external

// TomorrowRealtimeResponse is the body of GET /v4/weather/realtime
type TomorrowRealtimeResponse struct {
	Data *struct {
		Time   string          `json:"time"`
		Values *TomorrowValues `json:"values"`
	} `json:"data"`
	Location struct {
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
		Name string  `json:"name"`
	} `json:"location"`
}

// TomorrowValues covers realtime and hourly values. Absent fields stay nil.
type TomorrowValues struct {
	Temperature              *float64 `json:"temperature"`
	TemperatureApparent      *float64 `json:"temperatureApparent"`
	WeatherCode              *int     `json:"weatherCode"`
	WindSpeed                *float64 `json:"windSpeed"`
	WindDirection            *float64 `json:"windDirection"`
	WindGust                 *float64 `json:"windGust"`
	Humidity                 *float64 `json:"humidity"`
	PrecipitationProbability *float64 `json:"precipitationProbability"`
	PrecipitationType        *int     `json:"precipitationType"`
	Visibility               *float64 `json:"visibility"`
	CloudCover               *float64 `json:"cloudCover"`
	UVIndex                  *float64 `json:"uvIndex"`
}

// TomorrowForecastResponse is the body of GET /v4/weather/forecast
type TomorrowForecastResponse struct {
	Timelines *struct {
		Daily  []TomorrowDailyInterval  `json:"daily"`
		Hourly []TomorrowHourlyInterval `json:"hourly"`
	} `json:"timelines"`
}

type TomorrowDailyInterval struct {
	Time   string              `json:"time"`
	Values TomorrowDailyValues `json:"values"`
}

type TomorrowDailyValues struct {
	TemperatureMin              *float64 `json:"temperatureMin"`
	TemperatureMax              *float64 `json:"temperatureMax"`
	PrecipitationProbabilityAvg *float64 `json:"precipitationProbabilityAvg"`
	WeatherCodeMax              *int     `json:"weatherCodeMax"`
	WindSpeedAvg                *float64 `json:"windSpeedAvg"`
	WindDirectionAvg            *float64 `json:"windDirectionAvg"`
}

type TomorrowHourlyInterval struct {
	Time   string         `json:"time"`
	Values TomorrowValues `json:"values"`
}

// TomorrowErrorResponse is returned with non-2xx statuses
type TomorrowErrorResponse struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}
