package model

import "time"

// EconomicEvent is one scheduled release in the economic calendar.
type EconomicEvent struct {
	Date     time.Time
	Country  string
	Event    string
	Impact   string
	Actual   string
	Forecast string
	Previous string
}

// CalendarEventDto is the display form of an event served to the page.
type CalendarEventDto struct {
	Date     string `json:"date"`
	Country  string `json:"country"`
	Event    string `json:"event"`
	Impact   string `json:"impact"`
	Actual   string `json:"actual"`
	Forecast string `json:"forecast"`
	Previous string `json:"previous"`
}
