package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/veckoplan/internal/calendar"
	"github.com/zapponejosh/veckoplan/internal/config"
	"github.com/zapponejosh/veckoplan/internal/database"
	"github.com/zapponejosh/veckoplan/internal/logger"
)

const (
	minYear = 1
	maxYear = 9999

	// maxRangeDays bounds the inclusive span of an event listing.
	maxRangeDays = 366

	maxTitleLength = 200
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db     *database.DB
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// DayInfo classifies a single calendar day.
type DayInfo struct {
	Date          string           `json:"date"`
	Weekday       string           `json:"weekday"`
	WeekdayNumber int              `json:"weekday_number"` // 1 = Sunday
	ISOYear       int              `json:"iso_year"`
	ISOWeek       int              `json:"iso_week"`
	Holiday       *string          `json:"holiday"`
	IsHoliday     bool             `json:"is_holiday"`
	Events        []database.Event `json:"events"`
}

// HolidayInfo is one entry of a year's holiday list.
type HolidayInfo struct {
	Date    string `json:"date"`
	Name    string `json:"name"`
	Weekday string `json:"weekday"`
}

// WeekInfo is one ISO week of the planner.
type WeekInfo struct {
	Year  int       `json:"year"`
	Week  int       `json:"week"`
	Start string    `json:"start"`
	End   string    `json:"end"`
	Days  []DayInfo `json:"days"`
}

func newDayInfo(d calendar.Date, events []database.Event) DayInfo {
	isoYear, isoWeek := calendar.ISOWeek(d)
	info := DayInfo{
		Date:          d.String(),
		Weekday:       d.Weekday().String(),
		WeekdayNumber: int(d.Weekday()),
		ISOYear:       isoYear,
		ISOWeek:       isoWeek,
		Events:        events,
	}
	if name, ok := calendar.HolidayName(d); ok {
		info.Holiday = &name
		info.IsHoliday = true
	}
	if info.Events == nil {
		info.Events = []database.Event{}
	}
	return info
}

// today returns the current date in the configured time zone.
func (h *Handlers) today() calendar.Date {
	return calendar.FromTime(h.now().In(h.cfg.Location()))
}

func (h *Handlers) log(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context(), h.logger)
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.log(r).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetToday handles GET /api/v1/days/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	h.writeDay(w, r, h.today())
}

// GetDay handles GET /api/v1/days/{date}
func (h *Handlers) GetDay(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	date, err := calendar.ParseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	h.writeDay(w, r, date)
}

func (h *Handlers) writeDay(w http.ResponseWriter, r *http.Request, date calendar.Date) {
	byDate, err := h.eventsByDate(r.Context(), date, date)
	if err != nil {
		h.log(r).Error("failed to list events for day",
			slog.String("date", date.String()),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve events")
		return
	}

	WriteSuccess(w, newDayInfo(date, byDate[date.String()]))
}

// GetYearHolidays handles GET /api/v1/years/{year}/holidays
func (h *Handlers) GetYearHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYearParam(w, r)
	if !ok {
		return
	}

	holidays := calendar.Holidays(year)
	list := make([]HolidayInfo, 0, len(holidays))
	for _, hol := range holidays {
		list = append(list, HolidayInfo{
			Date:    hol.Date.String(),
			Name:    hol.Name,
			Weekday: hol.Date.Weekday().String(),
		})
	}

	WriteSuccess(w, map[string]interface{}{
		"year":     year,
		"holidays": list,
	})
}

// GetYearHolidaysICS handles GET /api/v1/years/{year}/holidays.ics
func (h *Handlers) GetYearHolidaysICS(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYearParam(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=helgdagar_%d.ics", year))

	if err := WriteHolidaysICS(w, year, calendar.Holidays(year), h.now()); err != nil {
		h.log(r).Warn("failed to write ics", slog.Int("year", year), slog.Any("error", err))
	}
}

// GetYearWeeks handles GET /api/v1/years/{year}/weeks
func (h *Handlers) GetYearWeeks(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYearParam(w, r)
	if !ok {
		return
	}

	WriteSuccess(w, map[string]int{
		"year":  year,
		"weeks": calendar.WeeksInYear(year),
	})
}

// GetWeek handles GET /api/v1/weeks/{year}/{week}
func (h *Handlers) GetWeek(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYearParam(w, r)
	if !ok {
		return
	}

	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		WriteBadRequest(w, "Week must be a number")
		return
	}

	dates, err := calendar.WeekDates(year, week)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidWeek) {
			WriteNotFound(w, fmt.Sprintf("Year %d has no week %d", year, week))
			return
		}
		WriteBadRequest(w, err.Error())
		return
	}

	start, end := dates[0], dates[len(dates)-1]
	byDate, err := h.eventsByDate(r.Context(), start, end)
	if err != nil {
		h.log(r).Error("failed to list events for week",
			slog.Int("year", year),
			slog.Int("week", week),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve events")
		return
	}

	days := make([]DayInfo, 0, len(dates))
	for _, d := range dates {
		days = append(days, newDayInfo(d, byDate[d.String()]))
	}

	WriteSuccess(w, WeekInfo{
		Year:  year,
		Week:  week,
		Start: start.String(),
		End:   end.String(),
		Days:  days,
	})
}

// ListEvents handles GET /api/v1/events?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := calendar.ParseDate(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date: %s. Use YYYY-MM-DD", startStr))
		return
	}

	end, err := calendar.ParseDate(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date: %s. Use YYYY-MM-DD", endStr))
		return
	}

	if start.After(end) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	if start.AddDays(maxRangeDays).Compare(end) <= 0 {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", maxRangeDays))
		return
	}

	events, err := h.db.ListEventsByDateRange(r.Context(), start.String(), end.String())
	if err != nil {
		h.log(r).Error("failed to list events", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve events")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"start":  start.String(),
		"end":    end.String(),
		"events": events,
	})
}

// CreateEvent handles POST /api/v1/events
func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date  string `json:"date"`
		Title string `json:"title"`
		Notes string `json:"notes,omitempty"`
	}

	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date: %s. Use YYYY-MM-DD", req.Date))
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		WriteBadRequest(w, "title is required")
		return
	}
	if len(title) > maxTitleLength {
		WriteBadRequest(w, fmt.Sprintf("title cannot exceed %d bytes", maxTitleLength))
		return
	}

	first, last := h.cfg.EventYears(h.today().Year)
	if date.Year < first || date.Year > last {
		WriteUnprocessable(w, fmt.Sprintf("Events must fall within %d-%d", first, last))
		return
	}

	event := &database.Event{
		Date:  date.String(),
		Title: title,
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		event.Notes = &notes
	}

	if err := h.db.CreateEvent(r.Context(), event); err != nil {
		h.log(r).Error("failed to create event", slog.Any("error", err))
		WriteInternalError(w, "Failed to create event")
		return
	}

	h.log(r).Info("event created",
		slog.Int64("id", event.ID),
		slog.String("date", event.Date))

	WriteCreated(w, event)
}

// DeleteEvent handles DELETE /api/v1/events/{id}
func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteBadRequest(w, "Invalid event ID")
		return
	}

	if err := h.db.DeleteEvent(r.Context(), id); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Event not found")
			return
		}
		h.log(r).Error("failed to delete event", slog.Int64("id", id), slog.Any("error", err))
		WriteInternalError(w, "Failed to delete event")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Event deleted"})
}

// eventsByDate loads the events of [start, end] keyed by date.
func (h *Handlers) eventsByDate(ctx context.Context, start, end calendar.Date) (map[string][]database.Event, error) {
	events, err := h.db.ListEventsByDateRange(ctx, start.String(), end.String())
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]database.Event, len(events))
	for _, e := range events {
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	return byDate, nil
}

// parseYearParam reads {year} and writes a 400 when it is not a supported
// year.
func parseYearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < minYear || year > maxYear {
		WriteBadRequest(w, fmt.Sprintf("Year must be between %d and %d", minYear, maxYear))
		return 0, false
	}
	return year, true
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
