package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finboard/model"

	"github.com/gin-gonic/gin"
)

type stubCalendarService struct {
	events []model.CalendarEventDto
}

func (s *stubCalendarService) GetUpcomingEvents() []model.CalendarEventDto {
	return s.events
}

func TestGetCalendar(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewCalendarController(&stubCalendarService{
		events: []model.CalendarEventDto{
			{Date: "Sep 01, 2026", Country: "US", Event: "ISM Manufacturing PMI", Impact: "Medium", Actual: "-", Forecast: "48.8", Previous: "48.7"},
			{Date: "Sep 04, 2026", Country: "US", Event: "Nonfarm Payrolls", Impact: "High", Actual: "-", Forecast: "170K", Previous: "114K"},
		},
	}).RegisterRoutes(r.Group("/api"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Success bool                     `json:"success"`
		Data    []model.CalendarEventDto `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || len(resp.Data) != 2 {
		t.Fatalf("envelope = %+v, want 2 events", resp)
	}
	if resp.Data[1].Event != "Nonfarm Payrolls" {
		t.Errorf("second event = %+v", resp.Data[1])
	}
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthController().RegisterRoutes(r.Group("/api"))

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/api/health", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s /api/health = %d, want 200", method, w.Code)
		}
	}
}
