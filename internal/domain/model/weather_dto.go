package model

// WeatherDisplay is the viewer's formatted version of a snapshot
type WeatherDisplay struct {
	Source            string   `json:"source"`
	Location          string   `json:"location"`
	Temperature       string   `json:"temperature"`
	Conditions        string   `json:"conditions"`
	Details           string   `json:"details,omitempty"`
	Wind              string   `json:"wind"`
	Precipitation     string   `json:"precipitation"`
	PrecipitationType string   `json:"precipitation_type,omitempty"`
	Humidity          string   `json:"humidity,omitempty"`
	Visibility        string   `json:"visibility,omitempty"`
	UVIndex           string   `json:"uv_index,omitempty"`
	Icon              string   `json:"icon,omitempty"`
	Alerts            []string `json:"alerts,omitempty"`
}

// SourceInfo describes one selectable source
type SourceInfo struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
}
