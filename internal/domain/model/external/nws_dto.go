package external

// NWSPointResponse is the body of GET /points/{lat},{lon}
type NWSPointResponse struct {
	Properties NWSPointProperties `json:"properties"`
}

type NWSPointProperties struct {
	Forecast         string              `json:"forecast"`
	ForecastHourly   string              `json:"forecastHourly"`
	GridID           string              `json:"gridId"`
	RelativeLocation NWSRelativeLocation `json:"relativeLocation"`
}

type NWSRelativeLocation struct {
	Properties struct {
		City  string `json:"city"`
		State string `json:"state"`
	} `json:"properties"`
}

// NWSForecastResponse is the body of both the forecast and forecastHourly endpoints
type NWSForecastResponse struct {
	Properties struct {
		Periods []NWSPeriod `json:"periods"`
	} `json:"properties"`
}

type NWSPeriod struct {
	Number                     int               `json:"number"`
	Name                       string            `json:"name"`
	StartTime                  string            `json:"startTime"`
	EndTime                    string            `json:"endTime"`
	IsDaytime                  bool              `json:"isDaytime"`
	Temperature                *float64          `json:"temperature"`
	TemperatureUnit            string            `json:"temperatureUnit"`
	WindSpeed                  string            `json:"windSpeed"`
	WindDirection              string            `json:"windDirection"`
	Icon                       string            `json:"icon"`
	ShortForecast              string            `json:"shortForecast"`
	DetailedForecast           string            `json:"detailedForecast"`
	ProbabilityOfPrecipitation *NWSQuantitativeV `json:"probabilityOfPrecipitation"`
}

// NWSQuantitativeV is a unit-tagged value; Value is null when NWS has no estimate
type NWSQuantitativeV struct {
	UnitCode string   `json:"unitCode"`
	Value    *float64 `json:"value"`
}

// NWSErrorResponse is the problem+json body NWS returns on failures
type NWSErrorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}
