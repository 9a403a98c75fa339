// Package view assembles the render-ready ViewModel for one lookup.
package view

import (
	"github.com/shuv1824/skypanel/internal/presentation"
	"github.com/shuv1824/skypanel/internal/types"
)

const (
	unitCelsius = "°C"
	unitDegrees = "°"
	unitPercent = "%"
	unitSpeed   = " km/h"
	unitHPa     = " hPa"
	unitKM      = " km"
	unitMM      = " mm"
	unitPM      = " µg/m³"
)

// Assembler builds view models. Its only state is the date formatter for the
// caller's locale.
type Assembler struct {
	dates *presentation.DateFormatter
}

func NewAssembler(dates *presentation.DateFormatter) *Assembler {
	if dates == nil {
		dates = presentation.NewDateFormatter("en")
	}
	return &Assembler{dates: dates}
}

// Build never fails: every missing value renders as a placeholder. air is
// optional and the AQI pill is left out entirely when it is nil.
func Build(loc types.Location, wx *types.ForecastResponse, air *types.AirQuality) types.ViewModel {
	return NewAssembler(nil).Build(loc, wx, air)
}

func (a *Assembler) Build(loc types.Location, wx *types.ForecastResponse, air *types.AirQuality) types.ViewModel {
	current := &types.CurrentConditions{}
	var days []types.DailyForecastEntry
	if wx != nil {
		if wx.Current != nil {
			current = wx.Current
		}
		days = wx.Daily.Entries()
	}

	night := presentation.IsNight(current.Time)
	theme := presentation.ThemeFromCode(current.WeatherCode, night)

	return types.ViewModel{
		LocationLabel: loc.Label,
		Theme:         string(theme),
		ThemeClass:    theme.Class(),
		Current:       a.current(current, days, night),
		ForecastCards: a.cards(days),
		AQIPill:       aqiPill(air),
	}
}

func (a *Assembler) current(c *types.CurrentConditions, days []types.DailyForecastEntry, night bool) types.CurrentView {
	icon, text := presentation.CodeToIconText(c.WeatherCode)

	v := types.CurrentView{
		Icon:          icon,
		Text:          text,
		Temperature:   presentation.Round(c.Temperature, unitCelsius),
		FeelsLike:     presentation.FormatNumber(c.ApparentTemperature, unitCelsius, 0),
		Humidity:      presentation.FormatNumber(c.Humidity, unitPercent, 0),
		WindSpeed:     presentation.FormatNumber(c.WindSpeed, unitSpeed, 0),
		WindGust:      presentation.FormatNumber(c.WindGust, unitSpeed, 0),
		WindDirection: presentation.ToCompass(c.WindDirection),
		WindDegrees:   presentation.FormatNumber(c.WindDirection, unitDegrees, 0),
		Pressure:      presentation.FormatNumber(c.Pressure, unitHPa, 0),
		CloudCover:    presentation.FormatNumber(c.CloudCover, unitPercent, 0),
		Visibility:    presentation.FormatNumber(presentation.Scale(c.Visibility, 1000), unitKM, 1),
		Precipitation: presentation.FormatNumber(c.Precipitation, unitMM, 0),
		UVIndex:       presentation.FormatNumber(c.UVIndex, "", 0),
		Sunrise:       presentation.Placeholder,
		Sunset:        presentation.Placeholder,
		ObservedAt:    presentation.ClockTime(c.Time),
		Night:         night,
	}
	if len(days) > 0 {
		v.Sunrise = presentation.ClockTime(days[0].Sunrise)
		v.Sunset = presentation.ClockTime(days[0].Sunset)
	}
	return v
}

func (a *Assembler) cards(days []types.DailyForecastEntry) []types.DailyCardView {
	cards := make([]types.DailyCardView, 0, len(days))
	for _, d := range days {
		icon, text := presentation.CodeToIconText(d.WeatherCode)
		card := types.DailyCardView{
			Date:      d.Date,
			DayName:   a.dates.DayName(d.Date),
			DateLabel: a.dates.ShortDate(d.Date),
			Icon:      icon,
			Text:      text,
			Max:       presentation.Round(d.TempMax, unitDegrees),
			Min:       presentation.Round(d.TempMin, unitDegrees),
		}
		if d.PrecipitationProbability != nil {
			pop := presentation.FormatNumber(d.PrecipitationProbability, unitPercent, 0)
			card.PrecipitationChance = &pop
		}
		cards = append(cards, card)
	}
	return cards
}

func aqiPill(air *types.AirQuality) *types.AQIView {
	if air == nil {
		return nil
	}
	info := presentation.AQICategory(air.USAQI)
	pm25 := presentation.FormatNumber(air.PM25, unitPM, 0)
	return &types.AQIView{
		Value:      presentation.Round(air.USAQI, ""),
		Category:   info.Category,
		StyleClass: info.StyleClass,
		PM25:       pm25,
		Title:      "PM2.5: " + pm25,
	}
}
