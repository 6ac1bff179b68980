package domain

import (
	"strings"
	"time"
)

// WeatherAdvisory flags days whose plan may need a second look.
// It is advisory only; the planner does not reorder activities because of it.
type WeatherAdvisory string

const (
	WeatherAdvisoryNone WeatherAdvisory = "none"
	WeatherAdvisoryRain WeatherAdvisory = "rain"
	WeatherAdvisoryHeat WeatherAdvisory = "heat"
)

const (
	rainPrecipitationThresholdMM = 5.0
	heatTemperatureThresholdC    = 30.0
)

// WeatherForecast is one day of a provider forecast.
type WeatherForecast struct {
	Date          time.Time
	Temperature   float64 // °C
	Condition     string
	Icon          string
	Precipitation float64 // mm
	Humidity      float64 // %
	WindSpeed     float64 // kph
}

// WeatherSummary is the per-day forecast attached to a DailyItinerary.
type WeatherSummary struct {
	Temperature   float64         `json:"temperature"`
	Condition     string          `json:"condition"`
	Icon          string          `json:"icon"`
	Precipitation float64         `json:"precipitation"`
	Humidity      float64         `json:"humidity,omitempty"`
	WindSpeed     float64         `json:"windSpeed,omitempty"`
	Advisory      WeatherAdvisory `json:"advisory"`
}

// ClassifyWeather reports rain when the condition mentions rain or showers or
// precipitation exceeds 5mm, heat above 30°C, and none otherwise. Rain wins over heat.
func ClassifyWeather(f WeatherForecast) WeatherAdvisory {
	cond := strings.ToLower(f.Condition)
	if strings.Contains(cond, "rain") || strings.Contains(cond, "shower") || f.Precipitation > rainPrecipitationThresholdMM {
		return WeatherAdvisoryRain
	}
	if f.Temperature > heatTemperatureThresholdC {
		return WeatherAdvisoryHeat
	}
	return WeatherAdvisoryNone
}

// Summarize converts a provider forecast into the summary stored on a day.
func (f WeatherForecast) Summarize() WeatherSummary {
	return WeatherSummary{
		Temperature:   f.Temperature,
		Condition:     f.Condition,
		Icon:          f.Icon,
		Precipitation: f.Precipitation,
		Humidity:      f.Humidity,
		WindSpeed:     f.WindSpeed,
		Advisory:      ClassifyWeather(f),
	}
}
