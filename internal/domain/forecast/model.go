package forecast

import "time"

// Location is a geocoded city.
type Location struct {
	Query     string  `json:"query"`
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

// DisplayName renders "Name, Country" when the country is known.
func (l Location) DisplayName() string {
	if l.Country == "" {
		return l.Name
	}
	return l.Name + ", " + l.Country
}

// Hourly holds the 72 point forecast: yesterday, today and tomorrow.
type Hourly struct {
	Timezone              string   `json:"timezone,omitempty"`
	Time                  []string `json:"time"`
	Temperature           Series   `json:"temperature"`
	ApparentTemperature   Series   `json:"apparentTemperature"`
	DewPoint              Series   `json:"dewPoint"`
	RelativeHumidity      Series   `json:"relativeHumidity"`
	VPD                   Series   `json:"vpd"`
	WindSpeed10m          Series   `json:"windSpeed10m"`
	WindSpeed80m          Series   `json:"windSpeed80m,omitempty"`
	WindSpeed120m         Series   `json:"windSpeed120m,omitempty"`
	WindSpeed180m         Series   `json:"windSpeed180m,omitempty"`
	Temperature80m        Series   `json:"temperature80m,omitempty"`
	Temperature120m       Series   `json:"temperature120m,omitempty"`
	Temperature180m       Series   `json:"temperature180m,omitempty"`
	Precipitation         Series   `json:"precipitation"`
	WeatherCode           Series   `json:"weatherCode"`
	ShortwaveRadiation    Series   `json:"shortwaveRadiation,omitempty"`
	DirectRadiation       Series   `json:"directRadiation,omitempty"`
	CloudCover            Series   `json:"cloudCover,omitempty"`
	WaveHeight            Series   `json:"waveHeight,omitempty"`
	SeaSurfaceTemperature Series   `json:"seaSurfaceTemperature,omitempty"`
}

// Daily holds the day-indexed forecast, today first.
type Daily struct {
	Time                []string `json:"time"`
	WeatherCode         Series   `json:"weatherCode"`
	TemperatureMax      Series   `json:"temperatureMax"`
	TemperatureMin      Series   `json:"temperatureMin"`
	RelativeHumidityMax Series   `json:"relativeHumidityMax"`
	WindSpeedMax        Series   `json:"windSpeedMax"`
	UVIndexMax          Series   `json:"uvIndexMax"`
}

// AirQuality holds the 48 point air quality forecast: today and tomorrow.
type AirQuality struct {
	Time            []string `json:"time"`
	USAQI           Series   `json:"usAqi"`
	PM25            Series   `json:"pm25,omitempty"`
	PM10            Series   `json:"pm10,omitempty"`
	CarbonMonoxide  Series   `json:"carbonMonoxide,omitempty"`
	NitrogenDioxide Series   `json:"nitrogenDioxide,omitempty"`
	SulphurDioxide  Series   `json:"sulphurDioxide,omitempty"`
	Ozone           Series   `json:"ozone,omitempty"`
}

// Marine holds the optional wave and sea temperature series.
type Marine struct {
	Time                  []string `json:"time"`
	WaveHeight            Series   `json:"waveHeight"`
	SeaSurfaceTemperature Series   `json:"seaSurfaceTemperature"`
}

// Dataset is everything fetched for one city. All values are metric.
type Dataset struct {
	Location   Location    `json:"location"`
	Hourly     *Hourly     `json:"hourly,omitempty"`
	Daily      *Daily      `json:"daily,omitempty"`
	AirQuality *AirQuality `json:"airQuality,omitempty"`
	FetchedAt  time.Time   `json:"fetchedAt"`
}

// TrendingCity is a searched city with its lookup count.
type TrendingCity struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}
