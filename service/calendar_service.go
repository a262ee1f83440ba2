package service

import (
	"sort"
	"time"

	localCache "finboard/cache"
	"finboard/model"

	"github.com/jinzhu/copier"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

type CalendarService interface {
	GetUpcomingEvents() []model.CalendarEventDto
}

type CalendarServiceImpl struct {
	store *cache.Cache
}

// NewCalendarService seeds the shared calendar store with the sample release
// schedule the dashboard shows. The table is illustrative and carries no
// actuals yet.
func NewCalendarService() CalendarService {
	s := &CalendarServiceImpl{store: localCache.CalendarCache}
	s.seed()
	return s
}

func (s *CalendarServiceImpl) GetUpcomingEvents() []model.CalendarEventDto {
	items := s.store.Items()
	events := make([]model.EconomicEvent, 0, len(items))
	for _, item := range items {
		events = append(events, item.Object.(model.EconomicEvent))
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Event < events[j].Event
	})

	dtos := make([]model.CalendarEventDto, 0, len(events))
	for _, event := range events {
		var dto model.CalendarEventDto
		if err := copier.Copy(&dto, &event); err != nil {
			log.Error().Err(err).Str("event", event.Event).Msg("Calendar event copy failed")
			continue
		}
		dto.Date = event.Date.Format("Jan 02, 2006")
		dtos = append(dtos, dto)
	}
	return dtos
}

func (s *CalendarServiceImpl) seed() {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	events := []model.EconomicEvent{
		{Date: day(2026, time.September, 1), Country: "US", Event: "ISM Manufacturing PMI", Impact: "Medium", Actual: "-", Forecast: "48.8", Previous: "48.7"},
		{Date: day(2026, time.September, 3), Country: "EU", Event: "ECB Interest Rate Decision", Impact: "High", Actual: "-", Forecast: "2.15%", Previous: "2.40%"},
		{Date: day(2026, time.September, 4), Country: "US", Event: "Nonfarm Payrolls", Impact: "High", Actual: "-", Forecast: "170K", Previous: "114K"},
		{Date: day(2026, time.September, 10), Country: "US", Event: "CPI (YoY)", Impact: "High", Actual: "-", Forecast: "2.9%", Previous: "3.2%"},
		{Date: day(2026, time.September, 11), Country: "GB", Event: "GDP (MoM)", Impact: "Medium", Actual: "-", Forecast: "0.1%", Previous: "0.0%"},
		{Date: day(2026, time.September, 17), Country: "US", Event: "FOMC Rate Decision", Impact: "High", Actual: "-", Forecast: "4.25%", Previous: "4.50%"},
		{Date: day(2026, time.September, 18), Country: "JP", Event: "BoJ Policy Rate", Impact: "Medium", Actual: "-", Forecast: "0.75%", Previous: "0.75%"},
		{Date: day(2026, time.September, 25), Country: "US", Event: "GDP (QoQ, Final)", Impact: "Medium", Actual: "-", Forecast: "2.8%", Previous: "3.0%"},
	}

	for _, event := range events {
		s.store.Set(event.Date.Format("2006-01-02")+"|"+event.Event, event, cache.NoExpiration)
	}

	log.Info().Int("events", len(events)).Msg("Economic calendar seeded")
}
